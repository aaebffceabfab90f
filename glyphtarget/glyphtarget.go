package glyphtarget

import (
	"encoding/json"
	"strings"

	"oss.terrastruct.com/util-go/go2"

	"oss.terrastruct.com/glyphs/lib/geo"
)

const (
	DEFAULT_INPUTS  = 2
	DEFAULT_OUTPUTS = 1

	DEFAULT_FONT_SIZE = 20.
)

// Glyph types the geometry core treats specially. Every other type string
// is sized and ported with the default rules.
const (
	TypeText               = "text"
	TypeUMLClass           = "uml-class"
	TypeResizableRectangle = "resizable-rectangle"
)

const (
	AttributeSelfDefined = "self-defined"
)

type PortType string

const (
	PortInput  PortType = "input"
	PortOutput PortType = "output"
)

type Port struct {
	ID   string   `json:"id"`
	Type PortType `json:"type"`
}

// UnmarshalJSON drops the absolute x/y older documents stored on ports.
// Offsets are always recomputed from the owning glyph.
func (p *Port) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID   json.RawMessage `json:"id"`
		Type PortType        `json:"type"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.Type = raw.Type
	p.ID = ""
	if len(raw.ID) > 0 && string(raw.ID) != "null" {
		var s string
		if err := json.Unmarshal(raw.ID, &s); err != nil {
			p.ID = string(raw.ID)
		} else {
			p.ID = s
		}
	}
	return nil
}

// Attribute is a UML class attribute or method row.
type Attribute struct {
	Name          string `json:"name"`
	Type          string `json:"type,omitempty"`
	DataType      string `json:"dataType,omitempty"`
	Visibility    string `json:"visibility,omitempty"`
	Multiplicity  string `json:"multiplicity,omitempty"`
	DefaultValue  string `json:"defaultValue,omitempty"`
	Documentation string `json:"documentation,omitempty"`
	Constraints   string `json:"constraints,omitempty"`
	IsStatic      bool   `json:"isStatic,omitempty"`
	IsReadOnly    bool   `json:"isReadOnly,omitempty"`
	IsDerived     bool   `json:"isDerived,omitempty"`
}

type attributeJSON Attribute

// UnmarshalJSON accepts the bare string rows of older documents.
func (a *Attribute) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*a = Attribute{Name: name}
		return nil
	}
	var aj attributeJSON
	if err := json.Unmarshal(b, &aj); err != nil {
		return err
	}
	*a = Attribute(aj)
	return nil
}

func (a Attribute) Signature() string {
	var sb strings.Builder
	sb.WriteString(a.Visibility)
	sb.WriteString(a.Name)
	t := a.DataType
	if t == "" && a.Type != AttributeSelfDefined {
		t = a.Type
	}
	if t != "" {
		sb.WriteString(": ")
		sb.WriteString(t)
	}
	return sb.String()
}

type Glyph struct {
	ID    string  `json:"id"`
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`

	// Width and Height override the computed size when positive.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Inputs  *int   `json:"inputs,omitempty"`
	Outputs *int   `json:"outputs,omitempty"`
	Ports   []Port `json:"ports,omitempty"`

	Attributes []Attribute `json:"attributes,omitempty"`
	Methods    []Attribute `json:"methods,omitempty"`

	GroupID string                 `json:"groupId,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

func (g *Glyph) Origin() *geo.Point {
	return geo.NewPoint(g.X, g.Y)
}

func (g *Glyph) NumInputs() int {
	if g.Inputs == nil {
		return DEFAULT_INPUTS
	}
	return go2.Max(*g.Inputs, 0)
}

func (g *Glyph) NumOutputs() int {
	if g.Outputs == nil {
		return DEFAULT_OUTPUTS
	}
	return go2.Max(*g.Outputs, 0)
}

// HasExplicitPorts reports whether Ports is authoritative over the
// Inputs/Outputs counts.
func (g *Glyph) HasExplicitPorts() bool {
	return len(g.Ports) > 0
}

func (g *Glyph) FontSize() float64 {
	if fs, ok := g.DataFloat("fontSize"); ok && fs > 0 {
		return fs
	}
	return DEFAULT_FONT_SIZE
}

func (g *Glyph) DataString(key string) string {
	if g.Data == nil {
		return ""
	}
	s, _ := g.Data[key].(string)
	return s
}

func (g *Glyph) DataFloat(key string) (float64, bool) {
	if g.Data == nil {
		return 0, false
	}
	switch v := g.Data[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Copy returns a deep copy of the glyph's slices and maps. Values in Data
// are copied one level deep.
func (g *Glyph) Copy() *Glyph {
	if g == nil {
		return nil
	}
	g2 := *g
	if g.Inputs != nil {
		g2.Inputs = go2.Pointer(*g.Inputs)
	}
	if g.Outputs != nil {
		g2.Outputs = go2.Pointer(*g.Outputs)
	}
	g2.Ports = append([]Port(nil), g.Ports...)
	g2.Attributes = append([]Attribute(nil), g.Attributes...)
	g2.Methods = append([]Attribute(nil), g.Methods...)
	if g.Data != nil {
		g2.Data = make(map[string]interface{}, len(g.Data))
		for k, v := range g.Data {
			g2.Data[k] = v
		}
	}
	return &g2
}

type ConnectionType string

const (
	ConnectionDefault     ConnectionType = "default"
	ConnectionAssociation ConnectionType = "association"
	ConnectionInheritance ConnectionType = "inheritance"
)

type View struct {
	Style     string  `json:"style,omitempty"`
	Color     string  `json:"color,omitempty"`
	Thickness float64 `json:"thickness,omitempty"`
	Dashed    bool    `json:"dashed,omitempty"`
}

type viewJSON View

// UnmarshalJSON also reads the routing style from "connectionType", the key
// some editor builds wrote it under.
func (v *View) UnmarshalJSON(b []byte) error {
	var raw struct {
		viewJSON
		ConnectionType string `json:"connectionType"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*v = View(raw.viewJSON)
	if v.Style == "" {
		v.Style = raw.ConnectionType
	}
	return nil
}

const DEFAULT_THICKNESS = 2.

func (v *View) StrokeWidth() float64 {
	if v == nil || v.Thickness <= 0 {
		return DEFAULT_THICKNESS
	}
	return v.Thickness
}

type Connection struct {
	ID          string         `json:"id,omitempty"`
	FromGlyphID string         `json:"fromGlyphId"`
	FromPort    PortRef        `json:"fromPortId"`
	ToGlyphID   string         `json:"toGlyphId"`
	ToPort      PortRef        `json:"toPortId"`
	Label       string         `json:"label,omitempty"`
	Type        ConnectionType `json:"type,omitempty"`
	View        *View          `json:"view,omitempty"`
	Points      []*geo.Point   `json:"points,omitempty"`
}

func (c *Connection) Touches(glyphID string) bool {
	return c.FromGlyphID == glyphID || c.ToGlyphID == glyphID
}

func (c *Connection) Style() string {
	if c.View == nil {
		return ""
	}
	return c.View.Style
}

func (c *Connection) Copy() *Connection {
	if c == nil {
		return nil
	}
	c2 := *c
	if c.View != nil {
		v := *c.View
		c2.View = &v
	}
	if c.Points != nil {
		c2.Points = geo.Points(c.Points).Copy()
	}
	return &c2
}

type Page struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Glyphs      []*Glyph      `json:"glyphs"`
	Connections []*Connection `json:"connections"`
}

// GlyphIndex returns the position of the glyph in paint order or -1.
func (p *Page) GlyphIndex(id string) int {
	for i, g := range p.Glyphs {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (p *Page) FindGlyph(id string) *Glyph {
	if i := p.GlyphIndex(id); i >= 0 {
		return p.Glyphs[i]
	}
	return nil
}

func (p *Page) ConnectionIndex(id string) int {
	for i, c := range p.Connections {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (p *Page) FindConnection(id string) *Connection {
	if i := p.ConnectionIndex(id); i >= 0 {
		return p.Connections[i]
	}
	return nil
}

// IsDangling reports whether either endpoint of c is missing from the page.
func (p *Page) IsDangling(c *Connection) bool {
	return p.FindGlyph(c.FromGlyphID) == nil || p.FindGlyph(c.ToGlyphID) == nil
}

// Copy is shallow: the returned page has its own slices but shares glyphs
// and connections with p.
func (p *Page) Copy() *Page {
	if p == nil {
		return nil
	}
	p2 := *p
	p2.Glyphs = append([]*Glyph(nil), p.Glyphs...)
	p2.Connections = append([]*Connection(nil), p.Connections...)
	return &p2
}

func NewPage(id, name string) *Page {
	return &Page{
		ID:          id,
		Name:        name,
		Glyphs:      []*Glyph{},
		Connections: []*Connection{},
	}
}
