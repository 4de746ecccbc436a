package catalog

// Category is a node of the marketplace category tree.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	Leaf     bool   `json:"leaf"`
}

// Attribute is a listing attribute a category requires or accepts.
type Attribute struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ValueType string   `json:"value_type"`
	Required  bool     `json:"required"`
	Values    []string `json:"values,omitempty"`
}

// Prediction is a category suggested for a listing title.
type Prediction struct {
	CategoryID   string     `json:"category_id"`
	CategoryName string     `json:"category_name"`
	Probability  float64    `json:"probability"`
	Path         []Category `json:"path,omitempty"`
}
