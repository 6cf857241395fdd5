package main

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shinyrainbow/thea5995property-sub000/numfmt"
)

var defaultLang = language.English

// summary renders the submitted listing with locale-aware grouping.
func summary(tag language.Tag, l listing) string {
	p := message.NewPrinter(tag)

	var sb strings.Builder
	sb.WriteString("Listing\n")
	sb.WriteString(p.Sprintf("  price:    %s\n", integer(p, l.Price)))
	sb.WriteString(p.Sprintf("  area:     %s\n", decimal(p, l.Area)))
	sb.WriteString(p.Sprintf("  bedrooms: %s\n", integer(p, l.Bedrooms)))
	return sb.String()
}

func integer(p *message.Printer, v numfmt.Value) string {
	f, ok := v.Float64()
	if !ok {
		return "-"
	}
	return p.Sprintf("%.0f", math.Trunc(f))
}

func decimal(p *message.Printer, v numfmt.Value) string {
	f, ok := v.Float64()
	if !ok {
		return "-"
	}
	return p.Sprintf("%.2f", f)
}
