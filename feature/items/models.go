package items

// Item is a single entry of the list.
type Item struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name" gorm:"size:255;not null"`
}

// TableName overrides the table name used by GORM.
func (Item) TableName() string {
	return "items"
}

// DefaultItems returns the items every fresh store starts with.
func DefaultItems() []Item {
	return []Item{
		{ID: 1, Name: "First Item"},
		{ID: 2, Name: "Second Item"},
	}
}
