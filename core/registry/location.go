package registry

// Location is one canonical library branch. It is the single source of truth for a
// physical branch, independent of any upstream source's naming.
type Location struct {
	// ID is unique across systems: "<system code>-<branch id>" (e.g. "sjpl-AL").
	ID string `json:"id" yaml:"id" gorm:"column:id;primaryKey;type:varchar(64)"`
	// Name is the display name, usually the name the catalog uses for the branch.
	Name string `json:"name" yaml:"name" gorm:"column:name;type:varchar(128)"`
	// System is the canonical library system name (e.g. "SJPL", "SCCLD").
	System string `json:"system" yaml:"system" gorm:"column:system;type:varchar(32)"`
	// BranchID is the upstream branch identifier.
	BranchID string `json:"branchId,omitempty" yaml:"branchId,omitempty" gorm:"column:branch_id;type:varchar(32)"`
	// Address is a free-text postal address.
	Address string  `json:"address" yaml:"address" gorm:"column:address;type:varchar(255)"`
	Lat     float64 `json:"lat" yaml:"lat" gorm:"column:lat;type:double"`
	Lng     float64 `json:"lng" yaml:"lng" gorm:"column:lng;type:double"`
	Phone   string  `json:"phone,omitempty" yaml:"phone,omitempty" gorm:"column:phone;type:varchar(32)"`
	URL     string  `json:"url,omitempty" yaml:"url,omitempty" gorm:"column:url;type:varchar(255)"`
	// Position keeps the registry order when the registry is stored in a table.
	Position int `json:"-" yaml:"-" gorm:"column:position;type:int"`
}

// TableName overrides the table name used by GORM.
func (Location) TableName() string {
	return "library_locations"
}
