package dom

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCreateElement(t *testing.T) {
	doc := NewDocument()

	tests := []struct {
		name    string
		el      *Element
		wantTag string
		wantNS  string
	}{
		{"html lowercased", doc.CreateElement("DIV"), "div", HTMLNamespace},
		{"svg keeps case", doc.CreateElementNS(SVGNamespace, "linearGradient"), "linearGradient", SVGNamespace},
		{"empty namespace", doc.CreateElementNS("", "p"), "p", HTMLNamespace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.el.TagName() != tt.wantTag {
				t.Errorf("TagName() = %q, want %q", tt.el.TagName(), tt.wantTag)
			}
			if tt.el.NamespaceURI() != tt.wantNS {
				t.Errorf("NamespaceURI() = %q, want %q", tt.el.NamespaceURI(), tt.wantNS)
			}
			if tt.el.NodeType() != ElementNode {
				t.Errorf("NodeType() = %v, want Element", tt.el.NodeType())
			}
		})
	}
}

func TestChildOperations(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul")
	a := doc.CreateElement("li")
	b := doc.CreateTextNode("b")
	c := doc.CreateElement("li")

	parent.AppendChild(a)
	parent.AppendChild(b)
	if a.ParentNode() != parent || b.ParentNode() != parent {
		t.Fatal("AppendChild did not set parent")
	}

	b.ReplaceWith(c)
	if len(parent.ChildNodes()) != 2 || parent.ChildNodes()[1] != c {
		t.Fatalf("ReplaceWith: children = %v", parent.ChildNodes())
	}
	if b.ParentNode() != nil {
		t.Error("replaced node still has a parent")
	}

	other := doc.CreateElement("ol")
	other.AppendChild(a)
	if len(parent.ChildNodes()) != 1 {
		t.Errorf("AppendChild did not detach from the previous parent")
	}

	c.Remove()
	if len(parent.ChildNodes()) != 0 || c.ParentNode() != nil {
		t.Error("Remove did not detach")
	}

	// Detached nodes ignore ReplaceWith.
	c.ReplaceWith(b)
	if b.ParentNode() != nil {
		t.Error("ReplaceWith on a detached node attached the replacement")
	}
}

func TestReplaceWithSibling(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	a := doc.CreateTextNode("a")
	b := doc.CreateTextNode("b")
	c := doc.CreateTextNode("c")
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	c.ReplaceWith(a)
	if got := OuterHTML(parent); got != "<div>ba</div>" {
		t.Errorf("OuterHTML() = %s, want <div>ba</div>", got)
	}
}

func TestTextContent(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	p.AppendChild(doc.CreateTextNode("hello "))
	em := doc.CreateElement("em")
	em.AppendChild(doc.CreateTextNode("world"))
	p.AppendChild(em)

	if got := p.TextContent(); got != "hello world" {
		t.Errorf("TextContent() = %q, want %q", got, "hello world")
	}
}

func TestAttributes(t *testing.T) {
	el := NewDocument().CreateElement("a")
	el.SetAttribute("href", "/x")
	el.SetAttribute("ID", "link")
	el.SetAttribute("href", "/y")

	want := []Attribute{{Name: "href", Value: "/y"}, {Name: "id", Value: "link"}}
	if diff := cmp.Diff(want, el.Attributes()); diff != "" {
		t.Errorf("Attributes() mismatch (-want +got):\n%s", diff)
	}

	el.RemoveAttribute("href")
	if el.HasAttribute("href") {
		t.Error("href still present after RemoveAttribute")
	}
}

func TestProperties(t *testing.T) {
	el := NewDocument().CreateElement("input")
	el.SetAttribute("value", "initial")

	if got := el.Property("value"); got != "initial" {
		t.Errorf("Property(value) = %v, want attribute fallback", got)
	}
	el.SetProperty("value", "typed")
	if got := el.Property("value"); got != "typed" {
		t.Errorf("Property(value) = %v, want typed", got)
	}
	if got, _ := el.GetAttribute("value"); got != "initial" {
		t.Errorf("value attribute = %q, must not follow the property", got)
	}

	el.SetProperty("disabled", true)
	if !el.HasAttribute("disabled") {
		t.Error("disabled property not reflected")
	}
	el.SetProperty("disabled", false)
	if el.HasAttribute("disabled") {
		t.Error("disabled attribute still present for false")
	}

	el.SetProperty("checked", true)
	if el.HasAttribute("checked") {
		t.Error("checked must not be reflected into the attribute")
	}
	if el.Property("checked") != true {
		t.Errorf("Property(checked) = %v, want true", el.Property("checked"))
	}
	if el.Property("unknown") != nil {
		t.Error("unset property should be nil")
	}
}

func TestClassList(t *testing.T) {
	el := NewDocument().CreateElement("div")
	list := el.ClassList()

	list.Add()
	if el.HasAttribute("class") {
		t.Fatal("adding nothing created a class attribute")
	}

	list.Add("a", "b", "a", "")
	list.Add("c")
	if diff := cmp.Diff([]string{"a", "b", "c"}, list.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}

	list.Remove("b", "missing")
	if got := list.String(); got != "a c" {
		t.Errorf("String() = %q, want %q", got, "a c")
	}

	if list.Toggle("a", false) || list.Contains("a") {
		t.Error("Toggle(a, false) left a present")
	}
	if !list.Toggle("d", true) || !list.Contains("d") {
		t.Error("Toggle(d, true) did not add d")
	}
	if list.Len() != 2 {
		t.Errorf("Len() = %d, want 2", list.Len())
	}
}

func TestStyle(t *testing.T) {
	el := NewDocument().CreateElement("div")
	el.SetAttribute("style", "color: blue")
	style := el.Style()

	if got := style.CSSText(); got != "color: blue" {
		t.Errorf("CSSText() = %q, literal must be kept until modified", got)
	}
	if got := style.Get("color"); got != "blue" {
		t.Errorf("Get(color) = %q, want blue", got)
	}

	style.Set("backgroundColor", "red")
	style.SetProperty("--gap", "4px")
	if got := style.CSSText(); got != "color: blue; background-color: red; --gap: 4px;" {
		t.Errorf("CSSText() = %q", got)
	}
	if got := style.GetPropertyValue("background-color"); got != "red" {
		t.Errorf("GetPropertyValue(background-color) = %q, want red", got)
	}

	style.Set("color", "")
	if got := style.Get("color"); got != "" {
		t.Errorf("Get(color) = %q after clearing, want empty", got)
	}
	style.RemoveProperty("--gap")
	if style.Len() != 1 {
		t.Errorf("Len() = %d, want 1", style.Len())
	}
}

func TestCSSName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"color", "color"},
		{"backgroundColor", "background-color"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"--main-color", "--main-color"},
		{"--mainColor", "--mainColor"},
	}

	for _, tt := range tests {
		if got := cssName(tt.in); got != tt.want {
			t.Errorf("cssName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDispatch(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("button")
	outer.AppendChild(inner)

	var order []string
	inner.SetProperty("onclick", func(ev *Event) {
		order = append(order, "inner")
		if ev.Target != inner {
			t.Error("Target is not the dispatching element")
		}
	})
	outer.SetProperty("onclick", func() { order = append(order, "outer") })

	if !inner.Dispatch(NewEvent("click")) {
		t.Error("Dispatch() = false without PreventDefault")
	}
	if diff := cmp.Diff([]string{"inner", "outer"}, order); diff != "" {
		t.Errorf("bubbling order mismatch (-want +got):\n%s", diff)
	}

	order = nil
	inner.SetProperty("onclick", func(ev *Event) {
		order = append(order, "inner")
		ev.StopPropagation()
		ev.PreventDefault()
	})
	if inner.Dispatch(NewEvent("click")) {
		t.Error("Dispatch() = true after PreventDefault")
	}
	if diff := cmp.Diff([]string{"inner"}, order); diff != "" {
		t.Errorf("StopPropagation order mismatch (-want +got):\n%s", diff)
	}
}

func TestOuterHTML(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	div.SetAttribute("title", `a "quoted" <value>`)
	div.AppendChild(doc.CreateTextNode("1 < 2 & 3"))
	div.AppendChild(doc.CreateElement("br"))
	svg := doc.CreateElementNS(SVGNamespace, "svg")
	svg.AppendChild(doc.CreateElementNS(SVGNamespace, "path"))
	div.AppendChild(svg)

	want := `<div title="a &quot;quoted&quot; &lt;value&gt;">1 &lt; 2 &amp; 3<br><svg><path></path></svg></div>`
	if got := OuterHTML(div); got != want {
		t.Errorf("OuterHTML() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteHTMLPretty(t *testing.T) {
	doc := NewDocument()
	ul := doc.CreateElement("ul")
	li := doc.CreateElement("li")
	li.AppendChild(doc.CreateTextNode("one"))
	ul.AppendChild(li)

	var buf bytes.Buffer
	if err := WriteHTML(&buf, ul, SerializeConfig{Pretty: true, Indent: "\t"}); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	want := "<ul>\n\t<li>\n\t\tone\n\t</li>\n</ul>\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteHTML() =\n%q\nwant\n%q", got, want)
	}
}
