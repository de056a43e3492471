package schema

const (
	CategoryCollection = "categories"
)

// Category groups requests by the kind of help needed.
type Category struct {
	ID            string   `bson:"id" json:"id"`
	Name          string   `bson:"name" json:"name"`
	Description   string   `bson:"description" json:"description"`
	Subcategories []string `bson:"subcategories" json:"subcategories"`
	Deliverable   bool     `bson:"deliverable" json:"deliverable"`
}
