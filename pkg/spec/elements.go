package spec

// Document structure

func Div(args ...any) *Node     { return element("div", args, 2) }
func Span(args ...any) *Node    { return element("span", args, 2) }
func P(args ...any) *Node       { return element("p", args, 2) }
func Section(args ...any) *Node { return element("section", args, 2) }
func Header(args ...any) *Node  { return element("header", args, 2) }
func Footer(args ...any) *Node  { return element("footer", args, 2) }
func Main(args ...any) *Node    { return element("main", args, 2) }
func Nav(args ...any) *Node     { return element("nav", args, 2) }

// Headings

func H1(args ...any) *Node { return element("h1", args, 2) }
func H2(args ...any) *Node { return element("h2", args, 2) }
func H3(args ...any) *Node { return element("h3", args, 2) }

// Lists

func Ul(args ...any) *Node { return element("ul", args, 2) }
func Ol(args ...any) *Node { return element("ol", args, 2) }
func Li(args ...any) *Node { return element("li", args, 2) }

// Inline and interactive

func Anchor(args ...any) *Node { return element("a", args, 2) }
func Strong(args ...any) *Node { return element("strong", args, 2) }
func Em(args ...any) *Node     { return element("em", args, 2) }
func Small(args ...any) *Node  { return element("small", args, 2) }
func Br(args ...any) *Node     { return element("br", args, 2) }
func Img(args ...any) *Node    { return element("img", args, 2) }

// Forms

func Form(args ...any) *Node     { return element("form", args, 2) }
func Label(args ...any) *Node    { return element("label", args, 2) }
func Input(args ...any) *Node    { return element("input", args, 2) }
func Button(args ...any) *Node   { return element("button", args, 2) }
func Textarea(args ...any) *Node { return element("textarea", args, 2) }
func Select(args ...any) *Node   { return element("select", args, 2) }
func Option(args ...any) *Node   { return element("option", args, 2) }

// SVG

func Svg(args ...any) *Node    { return element("svg", args, 2) }
func G(args ...any) *Node      { return element("g", args, 2) }
func Circle(args ...any) *Node { return element("circle", args, 2) }
func Path(args ...any) *Node   { return element("path", args, 2) }
