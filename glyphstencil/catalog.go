package glyphstencil

// catalog is the palette in display order.
var catalog = []Category{
	{Name: "basic", Entries: []Entry{
		{Type: "rect", Label: "Rectangle", Inputs: 1, Outputs: 1},
		{Type: "circle", Label: "Circle", Inputs: 1, Outputs: 1},
		{Type: "multi", Label: "Multi I/O", Inputs: 2, Outputs: 2},
		{Type: "text", Label: "Text", Inputs: 0, Outputs: 0},
		{Type: "png-glyph", Label: "PNG", Inputs: 1, Outputs: 1},
		{Type: "resizable-rectangle", Label: "Resizable Rectangle", Inputs: 1, Outputs: 1, Width: 120, Height: 80},
	}},
	{Name: "logic", Entries: []Entry{
		{Type: "and", Label: "AND", Inputs: 2, Outputs: 1},
		{Type: "or", Label: "OR", Inputs: 2, Outputs: 1},
		{Type: "not", Label: "NOT", Inputs: 1, Outputs: 1},
		{Type: "nand", Label: "NAND", Inputs: 2, Outputs: 1},
		{Type: "nor", Label: "NOR", Inputs: 2, Outputs: 1},
		{Type: "xor", Label: "XOR", Inputs: 2, Outputs: 1},
		{Type: "xnor", Label: "XNOR", Inputs: 2, Outputs: 1},
	}},
	{Name: "uml", Entries: []Entry{
		{Type: "uml-class", Label: "Class", Inputs: 0, Outputs: 0},
		{Type: "uml-interface", Label: "Interface", Inputs: 0, Outputs: 0},
		{Type: "uml-abstract", Label: "Abstract Class", Inputs: 0, Outputs: 0},
		{Type: "uml-enum", Label: "Enum", Inputs: 0, Outputs: 0},
		{Type: "uml-package", Label: "Package", Inputs: 0, Outputs: 0},
	}},
	{Name: "debug", Entries: []Entry{
		{Type: "debug", Label: "Debug", Inputs: 1, Outputs: 1},
	}},
	{Name: "network", Entries: []Entry{
		{Type: "network-server", Label: "Server", Inputs: 1, Outputs: 1},
		{Type: "network-switch", Label: "Switch", Inputs: 1, Outputs: 1},
		{Type: "network-router", Label: "Router", Inputs: 1, Outputs: 1},
		{Type: "network-firewall", Label: "Firewall", Inputs: 1, Outputs: 1},
		{Type: "network-pc", Label: "PC", Inputs: 1, Outputs: 1},
		{Type: "network-cloud", Label: "Cloud", Inputs: 1, Outputs: 1},
		{Type: "network-database", Label: "Database", Inputs: 1, Outputs: 1},
		{Type: "network-laptop", Label: "Laptop", Inputs: 1, Outputs: 1},
		{Type: "network-phone", Label: "Phone", Inputs: 1, Outputs: 1},
		{Type: "network-tablet", Label: "Tablet", Inputs: 1, Outputs: 1},
		{Type: "network-wifi", Label: "WiFi", Inputs: 1, Outputs: 1},
		{Type: "network-printer", Label: "Printer", Inputs: 1, Outputs: 1},
		{Type: "network-hub", Label: "Hub", Inputs: 1, Outputs: 1},
		{Type: "network-cable", Label: "Cable", Inputs: 1, Outputs: 1},
		{Type: "network-bridge", Label: "Bridge", Inputs: 1, Outputs: 1},
		{Type: "network-access-point", Label: "Access Point", Inputs: 1, Outputs: 1},
		{Type: "network-load-balancer", Label: "Load Balancer", Inputs: 1, Outputs: 1},
		{Type: "network-proxy", Label: "Proxy", Inputs: 1, Outputs: 1},
		{Type: "network-dns", Label: "DNS", Inputs: 1, Outputs: 1},
		{Type: "network-dhcp", Label: "DHCP", Inputs: 1, Outputs: 1},
		{Type: "network-nat", Label: "NAT", Inputs: 1, Outputs: 1},
		{Type: "network-pdu", Label: "PDU", Inputs: 1, Outputs: 1},
		{Type: "network-antenna", Label: "Antenna", Inputs: 1, Outputs: 1},
		{Type: "network-cctv", Label: "CCTV", Inputs: 1, Outputs: 1},
		{Type: "network-voip-phone", Label: "VoIP Phone", Inputs: 1, Outputs: 1},
		{Type: "network-optical-network", Label: "Optical Network", Inputs: 1, Outputs: 1},
		{Type: "network-satellite", Label: "Satellite", Inputs: 1, Outputs: 1},
		{Type: "network-ids", Label: "Intrusion Detection", Inputs: 1, Outputs: 1},
		{Type: "network-quantum-computer", Label: "Quantum Computer", Inputs: 1, Outputs: 1},
		{Type: "network-terminal", Label: "Terminal", Inputs: 1, Outputs: 0},
		{Type: "network-edge-device", Label: "Edge Device", Inputs: 1, Outputs: 1},
		{Type: "network-iot-device", Label: "IoT Device", Inputs: 1, Outputs: 1},
		{Type: "network-gateway", Label: "Gateway", Inputs: 1, Outputs: 1},
		{Type: "network-vpn", Label: "VPN", Inputs: 1, Outputs: 1},
		{Type: "network-cloud-storage", Label: "Cloud Storage", Inputs: 1, Outputs: 1},
		{Type: "network-content-delivery", Label: "Content Delivery", Inputs: 1, Outputs: 1},
		{Type: "network-firewall-alt", Label: "Firewall Alt", Inputs: 1, Outputs: 1},
		{Type: "network-server-rack", Label: "Server Rack", Inputs: 1, Outputs: 1},
		{Type: "network-wireless-controller", Label: "Wireless Controller", Inputs: 1, Outputs: 1},
		{Type: "network-unified-threat-management", Label: "UTM", Inputs: 1, Outputs: 1},
		{Type: "network-virtual-machine", Label: "Virtual Machine", Inputs: 1, Outputs: 1},
		{Type: "network-software-defined-network", Label: "SDN", Inputs: 1, Outputs: 1},
		{Type: "network-function-virtualization", Label: "NFV", Inputs: 1, Outputs: 1},
	}},
	{Name: "flowchart", Entries: []Entry{
		{Type: "flow-start", Label: "Start", Inputs: 0, Outputs: 1},
		{Type: "flow-end", Label: "End", Inputs: 1, Outputs: 0},
		{Type: "flow-process", Label: "Process", Inputs: 1, Outputs: 1},
		{Type: "flow-io", Label: "I/O", Inputs: 1, Outputs: 1},
		{Type: "flow-decision", Label: "Decision", Inputs: 1, Outputs: 2},
		{Type: "flow-connector", Label: "Connector", Inputs: 1, Outputs: 1},
		{Type: "flow-arrow", Label: "Arrow", Inputs: 1, Outputs: 1},
		{Type: "flow-card", Label: "Card", Inputs: 1, Outputs: 1},
		{Type: "flow-document", Label: "Document", Inputs: 1, Outputs: 1},
		{Type: "flow-predefined-process", Label: "Predefined Process", Inputs: 1, Outputs: 1},
		{Type: "flow-data", Label: "Data", Inputs: 1, Outputs: 1},
		{Type: "flow-delay", Label: "Delay", Inputs: 1, Outputs: 1},
		{Type: "flow-display", Label: "Display", Inputs: 1, Outputs: 1},
		{Type: "flow-subroutine", Label: "Subroutine", Inputs: 1, Outputs: 1},
		{Type: "flow-multi-document", Label: "Multi-Document", Inputs: 1, Outputs: 1},
		{Type: "flow-sorted-data", Label: "Sorted Data", Inputs: 1, Outputs: 1},
		{Type: "flow-collate", Label: "Collate", Inputs: 1, Outputs: 1},
		{Type: "flow-summarize", Label: "Summarize", Inputs: 1, Outputs: 1},
		{Type: "flow-extract", Label: "Extract", Inputs: 1, Outputs: 1},
		{Type: "flow-manual-input", Label: "Manual Input", Inputs: 1, Outputs: 1},
		{Type: "flow-manual-operation", Label: "Manual Operation", Inputs: 1, Outputs: 1},
		{Type: "flow-preparation", Label: "Preparation", Inputs: 1, Outputs: 1},
		{Type: "flow-on-page-connector", Label: "On-Page Connector", Inputs: 1, Outputs: 1},
		{Type: "flow-off-page-connector", Label: "Off-Page Connector", Inputs: 1, Outputs: 1},
		{Type: "flow-merge", Label: "Merge", Inputs: 2, Outputs: 1},
		{Type: "flow-decision-alt", Label: "Decision Alt", Inputs: 1, Outputs: 2},
		{Type: "flow-split", Label: "Split", Inputs: 1, Outputs: 2},
		{Type: "flow-database", Label: "Database", Inputs: 1, Outputs: 1},
		{Type: "flow-manual-loop", Label: "Manual Loop", Inputs: 1, Outputs: 1},
		{Type: "flow-loop-limit", Label: "Loop Limit", Inputs: 1, Outputs: 1},
		{Type: "flow-internal-storage", Label: "Internal Storage", Inputs: 1, Outputs: 1},
		{Type: "flow-server", Label: "Server", Inputs: 1, Outputs: 1},
	}},
	{Name: "mcp", Entries: []Entry{
		{Type: "mcp-glyph", Label: "MCP Glyph", Inputs: 2, Outputs: 2},
	}},
}

var descriptions = map[string]string{
	"flow-start":              "Start: entry point of the flowchart (no inputs, one output).",
	"flow-end":                "End: termination point of the flowchart (one input, no outputs).",
	"flow-process":            "Process: a step or action in the workflow.",
	"flow-decision":           "Decision: branching point with Yes/No or True/False (two outputs).",
	"flow-io":                 "I/O: input or output operation (parallelogram).",
	"flow-database":           "Database: stored data (cylindrical symbol).",
	"flow-display":            "Display: output shown to user (curved bottom).",
	"flow-manual-input":       "Manual Input: user-provided data (slanted top).",
	"flow-manual-operation":   "Manual Operation: manual task (beveled shape).",
	"flow-connector":          "Connector: flow connector, use for internal links.",
	"flow-on-page-connector":  "On-Page Connector: small circle to connect flows on same page.",
	"flow-off-page-connector": "Off-Page Connector: denotes continuation on another page.",
	"flow-arrow":              "Arrow: directional connector (use to show flow).",
	"flow-merge":              "Merge: join multiple flows into one.",
	"flow-split":              "Split: split one flow into multiple paths.",
	"flow-internal-storage":   "Internal Storage: data stored within the program (rectangle with L-line).",
}
