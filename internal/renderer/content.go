// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package renderer computes the concrete, displayable content of template
// elements by combining their static definitions with normalized event
// data. Resolution never fails: every missing field has a fallback, and an
// unrecognized element type yields a nil (no-render) result.
package renderer

import (
	"fmt"

	"ceremony/internal/catalog"
	"ceremony/internal/layout"
	"ceremony/internal/models"
)

// ContentKind discriminates the payload carried by a ResolvedContent.
type ContentKind string

const (
	ContentText      ContentKind = "text"
	ContentImage     ContentKind = "image"
	ContentImagePair ContentKind = "image-pair"
	ContentQRCode    ContentKind = "qrcode"
	ContentMap       ContentKind = "map"
	ContentCountdown ContentKind = "countdown"
	ContentGiftList  ContentKind = "gift-list"
	ContentRSVPForm  ContentKind = "rsvp-form"
)

// ImageMask tells the presentation layer how to clip an image.
type ImageMask string

const (
	MaskCircle    ImageMask = "circle"
	MaskRectangle ImageMask = "rectangle"
)

// ResolvedContent is the displayable value computed for one element.
// Exactly one payload field matching Kind is set.
type ResolvedContent struct {
	Kind      ContentKind       `json:"kind"`
	Text      string            `json:"text,omitempty"`
	Image     *ImagePayload     `json:"image,omitempty"`
	Images    *ImagePairPayload `json:"images,omitempty"`
	QR        *QRPayload        `json:"qr,omitempty"`
	Map       *MapPayload       `json:"map,omitempty"`
	Countdown *CountdownPayload `json:"countdown,omitempty"`
	GiftList  *GiftListPayload  `json:"giftList,omitempty"`
	RSVP      *RSVPPayload      `json:"rsvp,omitempty"`
}

// ImagePayload is a single image with its clip mask.
type ImagePayload struct {
	URL  string    `json:"url"`
	Mask ImageMask `json:"mask"`
}

// ImagePairPayload renders the wedding couple side by side. It is the one
// structural exception to the single-image rule.
type ImagePairPayload struct {
	Groom ImagePayload `json:"groom"`
	Bride ImagePayload `json:"bride"`
}

// QRPayload describes the entry-pass QR code. Size is already scaled to
// the container width.
type QRPayload struct {
	Value   string  `json:"value"`
	Size    float64 `json:"size"`
	Level   string  `json:"level"`
	FgColor string  `json:"fgColor"`
}

// MapPayload carries the venue coordinates for the "open in maps" action
// and a static preview reference. No map tiles are fetched here.
type MapPayload struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	PreviewURL    string  `json:"previewUrl"`
	DirectionsURL string  `json:"directionsUrl"`
}

// CountdownPayload feeds the presentation-layer countdown timer. Ticking
// is a presentation concern; the core only supplies the target date.
type CountdownPayload struct {
	EventDate   string `json:"eventDate"`
	AccentColor string `json:"accentColor"`
}

// GiftListPayload carries the optional payable reference for the wedding
// contribution section. An empty IBAN means the contribution text renders
// without one.
type GiftListPayload struct {
	IBAN        string `json:"iban,omitempty"`
	AccentColor string `json:"accentColor"`
}

// RSVPPayload gives the form its readability variant and the deadline
// pulled from the event's custom fields. Submission handling lives with
// the external collaborator, not here.
type RSVPPayload struct {
	Variant  string `json:"variant"`
	Deadline string `json:"deadline,omitempty"`
}

const (
	// DefaultPassBaseURL prefixes the deterministic entry-pass URL encoded
	// in QR elements.
	DefaultPassBaseURL = "https://votre-app.com/pass"

	// qrSizeMultiplier converts a QR element's style width into rendered
	// pixels after scaling.
	qrSizeMultiplier = 2.0
	defaultQRWidth   = 100.0
	qrFgColor        = "#1a1a1a"
	qrLevel          = "H"

	staticMapPreviewURL = "https://maps.googleapis.com/maps/api/staticmap?center=48.8688,2.3392&zoom=14&size=600x300&scale=2&maptype=roadmap&format=png&visual_refresh=true"
)

// lightBackgrounds is the fixed set of template background colors that get
// the light RSVP form variant.
var lightBackgrounds = map[string]bool{
	"#ffffff": true,
	"#fffafb": true,
	"#f4e0c8": true,
	"#f0f4f8": true,
}

// Resolver computes element content. It is stateless apart from the
// configured pass base URL, so resolution is a pure function of its inputs.
type Resolver struct {
	// PassBaseURL is the fixed base of the QR entry-pass URL.
	PassBaseURL string
}

// New returns a Resolver with the default pass base URL.
func New() *Resolver {
	return &Resolver{PassBaseURL: DefaultPassBaseURL}
}

// ResolveContent computes the displayable content for one element. scale
// is the layout scale factor for the rendering container. A nil result
// means the element renders nothing: either its type is unknown or its
// required data (e.g. a venue for map elements) is absent.
func (r *Resolver) ResolveContent(el catalog.TemplateElement, ev *models.EventData, cfg *catalog.TemplateConfig, scale float64) *ResolvedContent {
	switch el.Type {
	case catalog.ElementText:
		return &ResolvedContent{Kind: ContentText, Text: resolveText(el, ev)}

	case catalog.ElementImage:
		return resolveImage(el, ev)

	case catalog.ElementQRCode:
		return &ResolvedContent{Kind: ContentQRCode, QR: &QRPayload{
			Value:   r.PassURL(ev.TemplateID),
			Size:    qrSize(el, scale),
			Level:   qrLevel,
			FgColor: qrFgColor,
		}}

	case catalog.ElementMap:
		loc := ev.ResolvedLocation()
		if loc == nil {
			return nil
		}
		return &ResolvedContent{Kind: ContentMap, Map: &MapPayload{
			Name:          loc.Name,
			Address:       loc.Address,
			Lat:           loc.Lat,
			Lng:           loc.Lng,
			PreviewURL:    staticMapPreviewURL,
			DirectionsURL: fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%v,%v", loc.Lat, loc.Lng),
		}}

	case catalog.ElementCountdown:
		return &ResolvedContent{Kind: ContentCountdown, Countdown: &CountdownPayload{
			EventDate:   ev.EventDate,
			AccentColor: cfg.AccentColor,
		}}

	case catalog.ElementGiftList:
		return &ResolvedContent{Kind: ContentGiftList, GiftList: &GiftListPayload{
			IBAN:        ev.CustomString("iban"),
			AccentColor: cfg.AccentColor,
		}}

	case catalog.ElementRSVPForm:
		variant := "dark"
		if lightBackgrounds[cfg.BgColor] {
			variant = "light"
		}
		return &ResolvedContent{Kind: ContentRSVPForm, RSVP: &RSVPPayload{
			Variant:  variant,
			Deadline: ev.CustomFieldString("rsvp_deadline"),
		}}
	}

	// Forward-compatibility valve: catalog entries may reference element
	// kinds this binary does not implement yet.
	return nil
}

// PassURL builds the deterministic entry-pass URL for a template id.
func (r *Resolver) PassURL(templateID int64) string {
	base := r.PassBaseURL
	if base == "" {
		base = DefaultPassBaseURL
	}
	return fmt.Sprintf("%s/%d", base, templateID)
}

func qrSize(el catalog.TemplateElement, scale float64) float64 {
	w := el.Style.Width
	if w == 0 {
		w = defaultQRWidth
	}
	return layout.Metric(w, scale) * qrSizeMultiplier
}
