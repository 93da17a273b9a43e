// Package sample provides the showcase data: the built-in user records, the
// column set that renders them, and loaders for record files.
package sample

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"uiforge/internal/datatable"
	"uiforge/internal/jsonutil"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported data file format")

// Users returns the five demo users. Each call returns fresh records.
func Users() []datatable.Record {
	return []datatable.Record{
		{"id": 1, "name": "Alice Johnson", "email": "alice@example.com", "role": "Senior Developer", "status": "active", "joinDate": "2023-01-15", "department": "Engineering"},
		{"id": 2, "name": "Bob Smith", "email": "bob@example.com", "role": "Product Manager", "status": "active", "joinDate": "2023-02-20", "department": "Product"},
		{"id": 3, "name": "Carol Davis", "email": "carol@example.com", "role": "UX Designer", "status": "inactive", "joinDate": "2023-03-10", "department": "Design"},
		{"id": 4, "name": "David Wilson", "email": "david@example.com", "role": "Marketing Specialist", "status": "pending", "joinDate": "2023-04-05", "department": "Marketing"},
		{"id": 5, "name": "Eva Brown", "email": "eva@example.com", "role": "DevOps Engineer", "status": "active", "joinDate": "2023-05-12", "department": "Engineering"},
	}
}

// UserColumns renders user records: avatar initials with name and email,
// role, department, a status badge and a formatted join date.
func UserColumns() datatable.Columns {
	return datatable.Columns{
		{Key: "user", Title: "User", Field: "name", Sortable: true, Render: renderUser},
		{Key: "role", Title: "Role", Field: "role", Sortable: true},
		{Key: "department", Title: "Department", Field: "department", Sortable: true},
		{Key: "status", Title: "Status", Field: "status", Sortable: true, Render: renderStatus},
		{Key: "joinDate", Title: "Join Date", Field: "joinDate", Sortable: true, Render: renderDate},
	}
}

// Initials returns the first letter of each word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r := []rune(w)
		b.WriteRune(r[0])
	}
	return strings.ToUpper(b.String())
}

func renderUser(_ any, rec datatable.Record, _ int) string {
	name := jsonutil.GetString(rec, "name")
	avatar := lipgloss.NewStyle().Bold(true).Render("(" + Initials(name) + ")")
	email := jsonutil.GetString(rec, "email")
	if email == "" {
		return avatar + " " + name
	}
	return avatar + " " + name + " " + lipgloss.NewStyle().Faint(true).Render("<"+email+">")
}

// statusColors maps a status to its badge color.
var statusColors = map[string]string{
	"active":   "42",
	"inactive": "244",
	"pending":  "214",
}

func renderStatus(value any, _ datatable.Record, _ int) string {
	status := jsonutil.ToString(value)
	color, ok := statusColors[status]
	if !ok {
		color = "244"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("● " + status)
}

// FormatDate turns "2006-01-02" into "Jan 2, 2006"; other values pass through.
func FormatDate(value any) string {
	s := jsonutil.ToString(value)
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return s
	}
	return d.Format("Jan 2, 2006")
}

func renderDate(value any, _ datatable.Record, _ int) string {
	return FormatDate(value)
}

// ColumnsFor picks UserColumns for user-shaped records and otherwise infers
// one sortable column per field.
func ColumnsFor(records []datatable.Record) datatable.Columns {
	if len(records) == 0 {
		return UserColumns()
	}
	if _, ok := records[0]["name"]; ok {
		if _, ok := records[0]["email"]; ok {
			return UserColumns()
		}
	}
	return InferColumns(records)
}

// InferColumns builds one sortable column per field seen in records. The key
// field comes first, the rest alphabetically.
func InferColumns(records []datatable.Record) datatable.Columns {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for k := range rec {
			seen[k] = struct{}{}
		}
	}
	fields := make([]string, 0, len(seen))
	for k := range seen {
		fields = append(fields, k)
	}
	sort.Slice(fields, func(i, j int) bool {
		if (fields[i] == datatable.DefaultKeyField) != (fields[j] == datatable.DefaultKeyField) {
			return fields[i] == datatable.DefaultKeyField
		}
		return fields[i] < fields[j]
	})
	cols := make(datatable.Columns, len(fields))
	for i, f := range fields {
		cols[i] = datatable.Column{Key: f, Title: title(f), Field: f, Sortable: true}
	}
	return cols
}

func title(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// tomlFile is the layout of a .toml data file: one [[record]] table per row.
type tomlFile struct {
	Record []map[string]any `toml:"record"`
}

// Load reads records from a .json file (an array of objects) or a .toml file
// ([[record]] tables).
func Load(path string) ([]datatable.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonutil.UnmarshalArrayAllowEmpty[datatable.Record](data, "decode "+filepath.Base(path))
	case ".toml":
		var f tomlFile
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
		out := make([]datatable.Record, len(f.Record))
		for i, r := range f.Record {
			out[i] = datatable.Record(r)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}
