package models

// Category groups products by name. Names are unique per owner, ignoring case.
type Category struct {
	ID          string `json:"id"`
	OwnerID     string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type CategoryPatch struct {
	Name        *string
	Description *string
	Color       *string
}

func (cp CategoryPatch) Apply(c *Category) {
	if cp.Name != nil {
		c.Name = *cp.Name
	}
	if cp.Description != nil {
		c.Description = *cp.Description
	}
	if cp.Color != nil {
		c.Color = *cp.Color
	}
}
