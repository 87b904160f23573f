package models

// ComponentAlternative is a directed substitutability edge: the component
// identified by AlternativeComponentID can stand in for the one identified
// by ComponentID. Lower priority sorts first. The ordered pair is unique;
// the graph repository converts duplicate inserts into no-ops.
type ComponentAlternative struct {
	ID                     int64 `gorm:"column:id;primaryKey;autoIncrement"`
	ComponentID            int64 `gorm:"column:component_id;not null;index"`
	AlternativeComponentID int64 `gorm:"column:alternative_component_id;not null;index"`
	Priority               int   `gorm:"column:priority;not null"`
}

func (ComponentAlternative) TableName() string {
	return "component_alternatives"
}
