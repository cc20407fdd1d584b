package orgchart

import (
	"errors"
	"fmt"
	"html"
	"strings"

	errs "github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/roster"
)

// DefaultEmailDomain is stripped from email addresses in node labels to keep
// boxes narrow. The interactive page appends it back when building mailto links.
const DefaultEmailDomain = "redcross.org"

// Incident describes the operation the chart belongs to. It feeds the chart
// caption and the header and footer of the interactive page.
type Incident struct {
	Name              string `toml:"name"`
	DRNumber          string `toml:"dr_number"`
	OperationalPeriod string `toml:"operational_period"`
	PreparedBy        string `toml:"prepared_by"`
	PreparedByRole    string `toml:"prepared_by_role"`
	Page              string `toml:"page"`
}

// DefaultIncident returns the incident used when none is configured.
func DefaultIncident() Incident {
	return Incident{
		Name:              "FLOCOM",
		DRNumber:          "220-25",
		OperationalPeriod: "18:00 20/10/2024 to 17:59 21/10/2024",
		PreparedBy:        "Gary Pelletier",
		PreparedByRole:    "Information & Planning",
		Page:              "Page 8 of 53",
	}
}

// Caption renders the graph label placed above the chart.
func (i Incident) Caption() string {
	return fmt.Sprintf("\n\nIncident Organization Chart\n%s - DR %s\nOperational Period: %s\n\n",
		i.Name, i.DRNumber, i.OperationalPeriod)
}

// Options configures [Build].
type Options struct {
	Incident    Incident
	EmailDomain string // stripped from displayed emails; empty disables stripping
}

// DefaultOptions returns the options used by the CLI when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Incident:    DefaultIncident(),
		EmailDomain: DefaultEmailDomain,
	}
}

// Reason explains why a record or relation was left out of the chart.
type Reason string

const (
	ReasonVacant            Reason = "vacant position"
	ReasonDuplicateID       Reason = "duplicate id"
	ReasonUnknownSupervisor Reason = "supervisor not in roster"
	ReasonVacantSupervisor  Reason = "supervisor position is vacant"
)

// Omission records one record or reporting line that did not make it into
// the chart. Omissions are not errors; the caller decides whether to report them.
type Omission struct {
	RecordID  string
	ReportsTo string // set for edge omissions
	Reason    Reason
}

func (o Omission) String() string {
	if o.ReportsTo != "" {
		return fmt.Sprintf("%s -> %s: %s", o.ReportsTo, o.RecordID, o.Reason)
	}
	return fmt.Sprintf("%s: %s", o.RecordID, o.Reason)
}

// Build turns a roster into a chart.
//
// Every record with a non-empty name becomes one node keyed by its ID, in
// roster order. For every such record whose ReportsTo names an existing
// record that also has a name, an edge supervisor → record is added.
// Dangling references, vacant supervisors and vacant records are skipped
// and listed in [Chart.Omissions]; they never fail the build.
//
// The only error is a named record with no ID, reported as INVALID_ROSTER.
func Build(records roster.Roster, opts Options) (*Chart, error) {
	if opts.Incident == (Incident{}) {
		opts.Incident = DefaultIncident()
	}
	c := New(opts.Incident.Caption())

	placed := make([]bool, len(records))
	for i, rec := range records {
		if !rec.Filled() {
			c.Omissions = append(c.Omissions, Omission{RecordID: rec.ID, Reason: ReasonVacant})
			continue
		}
		err := c.AddNode(Node{
			ID:        rec.ID,
			Title:     rec.Title,
			Name:      rec.Name,
			Category:  rec.Category,
			FillColor: ColorFor(rec.Category),
			Label:     formatLabel(rec, opts.EmailDomain),
		})
		switch {
		case errors.Is(err, ErrDuplicateNodeID):
			c.Omissions = append(c.Omissions, Omission{RecordID: rec.ID, Reason: ReasonDuplicateID})
			continue
		case errors.Is(err, ErrInvalidNodeID):
			return nil, errs.Wrap(errs.ErrCodeInvalidRoster, err, "record %d (%q): missing id", i, rec.Name)
		case err != nil:
			return nil, err
		}
		placed[i] = true
	}

	for i, rec := range records {
		if !placed[i] || rec.ReportsTo == "" {
			continue
		}
		sup, ok := records.Lookup(rec.ReportsTo)
		if !ok {
			c.Omissions = append(c.Omissions, Omission{RecordID: rec.ID, ReportsTo: rec.ReportsTo, Reason: ReasonUnknownSupervisor})
			continue
		}
		if !sup.Filled() {
			c.Omissions = append(c.Omissions, Omission{RecordID: rec.ID, ReportsTo: rec.ReportsTo, Reason: ReasonVacantSupervisor})
			continue
		}
		if err := c.AddEdge(Edge{From: sup.ID, To: rec.ID}); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", sup.ID, rec.ID, err)
		}
	}

	return c, nil
}

// formatLabel builds the HTML-like label body: bold title and name lines,
// then phone and email lines in a smaller font when present.
func formatLabel(rec roster.Record, emailDomain string) string {
	lines := []string{
		"<B>" + html.EscapeString(rec.Title) + "</B>",
		"<B>" + html.EscapeString(rec.Name) + "</B>",
	}
	if rec.Phone != "" {
		lines = append(lines, `<FONT POINT-SIZE="9">Phone: `+html.EscapeString(rec.Phone)+"</FONT>")
	}
	if rec.Email != "" {
		lines = append(lines, `<FONT POINT-SIZE="9">Email: `+html.EscapeString(displayEmail(rec.Email, emailDomain))+"</FONT>")
	}
	return strings.Join(lines, "<BR/>")
}

func displayEmail(email, domain string) string {
	if domain == "" {
		return email
	}
	return strings.TrimSuffix(email, "@"+domain)
}
