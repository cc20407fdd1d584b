// Package webpage writes the interactive HTML wrapper around a rendered chart.
//
// The page embeds the chart SVG by reference (an <object> element with an
// <img> fallback) and ships a small script that, once the SVG has loaded,
// turns phone numbers into tel: links and email addresses into mailto:
// links. Nothing is inlined, so the page and the SVG must sit next to each
// other on disk.
package webpage

import (
	"bytes"
	"html/template"
	"io"
	"os"

	"github.com/matzehuels/orgchart/pkg/buildinfo"
	errs "github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

const (
	DefaultSVGFile = "org_chart.svg"
	DefaultTitle   = "Organization Chart"
)

// Page holds everything the wrapper template needs. Zero fields fall back to
// defaults: DefaultSVGFile, DefaultTitle and orgchart.DefaultIncident.
type Page struct {
	Title       string
	SVGFile     string // path of the chart relative to the page
	EmailDomain string // appended to bare email local parts in mailto links
	Incident    orgchart.Incident
}

type pageData struct {
	Page
	Generator string
	Script    template.JS
	Style     template.CSS
}

// Write renders the page to w.
func Write(w io.Writer, p Page) error {
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.SVGFile == "" {
		p.SVGFile = DefaultSVGFile
	}
	if p.Incident == (orgchart.Incident{}) {
		p.Incident = orgchart.DefaultIncident()
	}

	return pageTmpl.Execute(w, pageData{
		Page:      p,
		Generator: buildinfo.Generator(),
		Script:    template.JS(pageJS),
		Style:     template.CSS(pageCSS),
	})
}

// WriteFile renders the page to path, truncating any existing file.
func WriteFile(path string, p Page) error {
	var buf bytes.Buffer
	if err := Write(&buf, p); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "render page")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="generator" content="{{.Generator}}">
    <title>{{.Title}}</title>
    <style>{{.Style}}</style>
    <script>
        const orgchartEmailDomain = {{.EmailDomain}};
{{.Script}}
    </script>
</head>
<body>
    <div class="header">
        <h1>Incident Organization Chart</h1>
        <p><strong>Incident Name:</strong> {{.Incident.Name}} | <strong>DR Number:</strong> {{.Incident.DRNumber}}</p>
        <p><strong>Operational Period:</strong> {{.Incident.OperationalPeriod}}</p>
    </div>

    <div class="chart-container">
        <object id="chart" data="{{.SVGFile}}" type="image/svg+xml" width="100%">
            <img src="{{.SVGFile}}" alt="Organization Chart" />
        </object>
    </div>

    <div class="footer">
        <p><strong>Prepared By:</strong> {{.Incident.PreparedBy}}<br/>{{.Incident.PreparedByRole}}</p>
        <p>{{.Incident.Page}}</p>
    </div>
</body>
</html>
`))

const pageCSS = `
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .header {
            background: white;
            padding: 20px;
            border-bottom: 3px solid #dc2626;
            margin-bottom: 20px;
        }
        .chart-container {
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            overflow-x: auto;
        }
        object, svg {
            max-width: 100%;
            height: auto;
        }
        .footer {
            margin-top: 20px;
            padding: 20px;
            background: white;
            border-top: 2px solid #333;
        }
    `

// pageJS scans the chart's text nodes once the SVG document is available.
// Email lines are checked first so an address full of digits is never
// mistaken for a phone number.
const pageJS = `
        (function () {
            var emailPattern = /Email:\s*(\S+)|([\w.+-]+@[\w-]+(?:\.[\w-]+)+)/;
            var phonePattern = /(\+?\d[\d\s().-]{6,}\d)/;

            function makeClickable(text, href) {
                text.style.cursor = 'pointer';
                text.style.fill = '#2563eb';
                text.addEventListener('click', function () {
                    window.top.location.href = href;
                });
            }

            function linkify(svg) {
                svg.querySelectorAll('text').forEach(function (text) {
                    var content = text.textContent || '';
                    var email = content.match(emailPattern);
                    if (email) {
                        var address = email[1] || email[2];
                        if (address.indexOf('@') < 0 && orgchartEmailDomain) {
                            address += '@' + orgchartEmailDomain;
                        }
                        makeClickable(text, 'mailto:' + address);
                        return;
                    }
                    var phone = content.match(phonePattern);
                    if (phone) {
                        makeClickable(text, 'tel:' + phone[1].replace(/\D/g, ''));
                    }
                });
            }

            window.addEventListener('load', function () {
                var chart = document.getElementById('chart');
                var doc = chart && chart.contentDocument;
                var svg = doc ? doc.querySelector('svg') : document.querySelector('svg');
                if (svg) {
                    linkify(svg);
                }
            });
        })();
    `
