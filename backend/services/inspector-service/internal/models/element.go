package models

// Element is a building space projected from a graph store Room node.
type Element struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	LongName   string                 `json:"long_name,omitempty"`
	GlobalID   string                 `json:"global_id,omitempty"`
	Type       string                 `json:"type,omitempty"`
	Floor      string                 `json:"floor"`
	CategoryIT string                 `json:"category_it,omitempty"`
	CategoryEN string                 `json:"category_en,omitempty"`
	Area       *float64               `json:"area,omitempty"`
	IsExternal *bool                  `json:"is_external,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// TopologyResult lists elements matched by one topology query.
type TopologyResult struct {
	Count int       `json:"count"`
	Items []Element `json:"items"`
}
