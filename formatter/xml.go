package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/campus-wayfinder/stepper"
	"github.com/theoremus-urban-solutions/campus-wayfinder/wayfinding"
)

// BuildXML serializes a route response to XML
func (rb *responseBuilder) BuildXML(res *RouteResponse) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	b.WriteString("<Route>")
	writeElement(&b, "ResponseTimestamp", res.ResponseTimestamp)
	writeElement(&b, "ProducerRef", res.ProducerRef)
	writeElement(&b, "TripId", res.TripID)
	writeElement(&b, "ValidUntil", res.ValidUntil)
	writeElement(&b, "Category", string(res.Category))
	b.WriteString("<Trip>")
	writeElement(&b, "StartRoomId", res.Trip.StartRoomID)
	writeElement(&b, "EndRoomId", res.Trip.EndRoomID)
	writeElement(&b, "WheelchairAccess", strconv.FormatBool(res.Trip.WheelchairAccess))
	b.WriteString("</Trip>")
	b.WriteString("<Legs>")
	for _, leg := range res.Legs {
		writeLegXML(&b, leg)
	}
	b.WriteString("</Legs>")
	writeStepperXML(&b, res.Stepper)
	b.WriteString("</Route>")
	return []byte(b.String())
}

// BuildErrorXML serializes an error payload to XML
func (rb *responseBuilder) BuildErrorXML(res *ErrorResponse) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>")
	b.WriteString("<Error>")
	writeElement(&b, "ResponseTimestamp", res.ResponseTimestamp)
	writeElement(&b, "Call", res.Call)
	writeElement(&b, "Description", res.Description)
	b.WriteString("</Error>")
	return []byte(b.String())
}

func writeLegXML(b *strings.Builder, leg wayfinding.Leg) {
	b.WriteString("<Leg kind=\"")
	b.WriteString(xmlEscape(string(leg.Kind)))
	b.WriteString("\"")
	if leg.NotFound {
		b.WriteString(" notFound=\"true\"")
	}
	if leg.URL == "" {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	writeElement(b, "Url", leg.URL)
	b.WriteString("</Leg>")
}

func writeStepperXML(b *strings.Builder, st stepper.State) {
	b.WriteString("<Stepper>")
	b.WriteString("<Index>")
	b.WriteString(strconv.Itoa(st.Index))
	b.WriteString("</Index>")
	b.WriteString("<Total>")
	b.WriteString(strconv.Itoa(st.Total))
	b.WriteString("</Total>")
	writeElement(b, "Idle", strconv.FormatBool(st.Idle))
	writeElement(b, "ShowNext", strconv.FormatBool(st.ShowNext))
	writeElement(b, "ShowPrevious", strconv.FormatBool(st.ShowPrevious))
	if st.Current != nil {
		b.WriteString("<Current>")
		writeLegXML(b, *st.Current)
		b.WriteString("</Current>")
	}
	b.WriteString("</Stepper>")
}

// writeElement skips empty values.
func writeElement(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
