package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Field names are capitalized in both bson and json tags to stay compatible
// with the documents and wire format the existing clients already use.

type Genre struct {
	Name        string `bson:"Name" json:"Name"`
	Description string `bson:"Description" json:"Description"`
}

type Director struct {
	Name string `bson:"Name" json:"Name"`
	Bio  string `bson:"Bio" json:"Bio"`
}

// Movie is read-only through the API; only the seeder writes this collection.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"Title" json:"Title"`
	Description string             `bson:"Description" json:"Description"`
	Genre       Genre              `bson:"Genre" json:"Genre"`
	Director    Director           `bson:"Director" json:"Director"`
	Actors      []string           `bson:"Actors" json:"Actors"`
	ImageURL    string             `bson:"ImageURL" json:"ImageURL"`
	Featured    bool               `bson:"Featured" json:"Featured"`
}
