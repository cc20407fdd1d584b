// Package roster loads organizational-roster records.
//
// A roster is a flat, ordered list of [Record] values. Hierarchy is expressed
// only through [Record.ReportsTo], which names the ID of the supervising
// record; turning that into a chart is the job of package orgchart.
//
// Rosters are read from JSON, YAML or TOML files (see [Load]). When no roster
// file exists the built-in [Default] sample is used instead, so running the
// tool in an empty directory still produces a chart.
//
// Loading performs no schema validation. Missing fields decode to empty
// strings and surface later, for example as an empty node ID when the chart
// is built.
package roster

// Record is one row of personnel or position data.
//
// Empty strings mean "absent": a record with no Name is a vacant position,
// and a record with no ReportsTo sits at the top of the chart.
type Record struct {
	ID        string `json:"id" yaml:"id" toml:"id"`
	Title     string `json:"title" yaml:"title" toml:"title"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty" toml:"phone,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty" toml:"email,omitempty"`
	Category  string `json:"category" yaml:"category" toml:"category"`
	ReportsTo string `json:"reportsTo,omitempty" yaml:"reportsTo,omitempty" toml:"reportsTo,omitempty"`
}

// Filled reports whether the position has a named occupant.
func (r Record) Filled() bool { return r.Name != "" }

// Roster is an ordered sequence of records. Order is preserved from the
// source file and determines node order in the rendered chart.
type Roster []Record

// Filled returns the number of records with a named occupant.
func (r Roster) Filled() int {
	n := 0
	for _, rec := range r {
		if rec.Filled() {
			n++
		}
	}
	return n
}

// Lookup returns the first record with the given ID.
func (r Roster) Lookup(id string) (Record, bool) {
	for _, rec := range r {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Default returns the built-in sample roster used when no roster file is
// present. A fresh slice is returned on every call.
func Default() Roster {
	return Roster{
		{ID: "cmd-dro", Title: "DRO Director", Name: "Virginia Mewborn",
			Phone: "917-670-8334", Email: "Virginia.Mewborn@redcross.org", Category: "Command"},
		{ID: "cmd-rcco", Title: "RCCO", Name: "Ryan Lock",
			Phone: "850-354-2342", Email: "Ryan.Lock3@redcross.org", Category: "Command", ReportsTo: "cmd-dro"},
		{ID: "cmd-cos", Title: "Chief of Staff", Name: "Janice Vannatta",
			Phone: "601-325-3656", Email: "Janice.Vannatta4@redcross.org", Category: "Command", ReportsTo: "cmd-dro"},
		{ID: "ops-ad", Title: "AD Operations", Name: "Patricia DAlessandro",
			Phone: "319-404-2096", Email: "Patricia.DAlessandro2@redcross.org", Category: "Operations", ReportsTo: "cmd-dro"},
		{ID: "ops-zone1", Title: "Zone Coordinator-Zone 1", Name: "Rick Schou",
			Phone: "980-721-8710", Email: "Rick.Schou@redcross.org", Category: "Operations", ReportsTo: "ops-ad"},
		{ID: "ops-zone2", Title: "Zone Coordinator-Zone 2", Name: "Bene Hunter",
			Phone: "941-224-3350", Email: "Bene.Hunter2@redcross.org", Category: "Operations", ReportsTo: "ops-ad"},
		{ID: "ops-mass", Title: "HQ Mass Care Chief", Name: "Brenda Bridges",
			Phone: "760-987-5452", Email: "brenda.bridges2@redcross.org", Category: "Operations", ReportsTo: "ops-ad"},
		{ID: "log-ad", Title: "AD Logistics", Name: "Marvin Williams",
			Phone: "931-237-3823", Email: "Marvin.Williams2@redcross.org", Category: "Logistics Section", ReportsTo: "cmd-dro"},
		{ID: "log-chief", Title: "HQ Logistics Chief", Name: "Margenia Hatfield",
			Phone: "765-602-9133", Email: "Margenia.Hatfield@redcross.org", Category: "Logistics Section", ReportsTo: "log-ad"},
		{ID: "log-transport", Title: "HQ Transportation Manager", Name: "Lee Meyer",
			Phone: "719-749-5672", Email: "Lee.Meyer@redcross.org", Category: "Logistics Section", ReportsTo: "log-chief"},
	}
}
