// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

// templates is the full catalog, in insertion order. The listing endpoint
// preserves this order. Slugs and numeric ids must be unique; the registry
// constructor panics on duplicates at startup.
var templates = []TemplateConfig{
	{
		ID:          "royal",
		NumericID:   1,
		Name:        "Gala Royal",
		Description: "Élégance intemporelle, or et noir profond.",
		PreviewURL:  "/wedding.mp4",
		BgURL:       "https://images.unsplash.com/photo-1519741497674-611481863552?auto=format&fit=crop&q=80&w=2070",
		BgColor:     "#1a1a1a",
		AccentColor: "#D4AF37",
		Fonts:       []string{"Cormorant+Garamond", "Playfair+Display"},
		Pages: []TemplatePage{
			{
				ID:    "cover",
				Title: "Accueil",
				Elements: []TemplateElement{
					{ID: "host", Type: ElementText, X: 50, Y: 15, Style: StyleSpec{FontSize: 16, FontFamily: "Cormorant Garamond", Color: "#D4AF37", TextAlign: "center", LetterSpacing: "0.4em", TextTransform: "uppercase"}},
					{ID: "photo", Type: ElementImage, X: 50, Y: 40, Style: StyleSpec{Width: 60}},
					{ID: "title", Type: ElementText, X: 50, Y: 65, Style: StyleSpec{FontSize: 48, FontFamily: "Playfair Display", Color: "#ffffff", TextAlign: "center", FontWeight: "bold"}},
					{ID: "names", Type: ElementText, X: 50, Y: 78, Style: StyleSpec{FontSize: 24, FontFamily: "Cormorant Garamond", Color: "#D4AF37", TextAlign: "center", Italic: true}},
					{ID: "subtitle", Type: ElementText, X: 50, Y: 88, Style: StyleSpec{FontSize: 16, FontFamily: "Cormorant Garamond", Color: "#D4AF37", TextAlign: "center", Italic: true}, Content: "Une soirée d’exception"},
				},
			},
			{
				ID:    "details",
				Title: "Événement",
				Elements: []TemplateElement{
					{ID: "section-title", Type: ElementText, X: 50, Y: 20, Style: StyleSpec{FontSize: 24, FontFamily: "Playfair Display", Color: "#D4AF37", TextAlign: "center", TextTransform: "uppercase"}, Content: "Le Programme"},
					{ID: "date", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 32, FontFamily: "Cormorant Garamond", Color: "#ffffff", TextAlign: "center"}},
					{ID: "time", Type: ElementText, X: 50, Y: 65, Style: StyleSpec{FontSize: 18, FontFamily: "Cormorant Garamond", Color: "#D4AF37", TextAlign: "center"}, Content: "Réception à partir de 19h00"},
				},
			},
			{
				ID:    "location",
				Title: "Lieu",
				Elements: []TemplateElement{
					{ID: "location-title", Type: ElementText, X: 50, Y: 20, Style: StyleSpec{FontSize: 24, FontFamily: "Playfair Display", Color: "#D4AF37", TextAlign: "center"}, Content: "Le Palais"},
					{ID: "location", Type: ElementText, X: 50, Y: 40, Style: StyleSpec{FontSize: 18, FontFamily: "Cormorant Garamond", Color: "#ffffff", TextAlign: "center", Width: 80}},
					{ID: "map", Type: ElementMap, X: 50, Y: 70, Style: StyleSpec{Width: 90}},
				},
			},
			{
				ID:    "rsvp",
				Title: "RSVP",
				Elements: []TemplateElement{
					{ID: "rsvp-title", Type: ElementText, X: 50, Y: 15, Style: StyleSpec{FontSize: 24, FontFamily: "Playfair Display", Color: "#D4AF37", TextAlign: "center"}, Content: "Votre Présence"},
					{ID: "rsvp-form", Type: ElementRSVPForm, X: 50, Y: 55, Style: StyleSpec{Width: 85}},
				},
			},
			{
				ID:    "end",
				Title: "Merci",
				Elements: []TemplateElement{
					{ID: "qr", Type: ElementQRCode, X: 50, Y: 40, Style: StyleSpec{Width: 35}},
					{ID: "thanks", Type: ElementText, X: 50, Y: 70, Style: StyleSpec{FontSize: 32, FontFamily: "Playfair Display", Color: "#ffffff", TextAlign: "center"}, Content: "Au plaisir de vous voir"},
					{ID: "footer", Type: ElementText, X: 50, Y: 85, Style: StyleSpec{FontSize: 12, FontFamily: "Cormorant Garamond", Color: "#D4AF37", TextAlign: "center", TextTransform: "uppercase"}, Content: "Veuillez présenter ce code à l’entrée"},
				},
			},
		},
	},
	{
		ID:          "minimal",
		NumericID:   2,
		Name:        "Minimal Modern",
		Description: "Simplicité, clarté et typographie audacieuse.",
		PreviewURL:  "/video2.mp4",
		BgColor:     "#ffffff",
		AccentColor: "#1a1a1a",
		Fonts:       []string{"Inter", "Montserrat"},
		Pages: []TemplatePage{
			{ID: "cover", Title: "Cover", Elements: []TemplateElement{{ID: "title", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 48, FontFamily: "Montserrat", Color: "#1a1a1a", TextAlign: "center", FontWeight: "900", TextTransform: "uppercase"}}}},
			{ID: "details", Title: "Date", Elements: []TemplateElement{{ID: "date", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 24, FontFamily: "Inter", Color: "#1a1a1a", TextAlign: "center", FontWeight: "300"}}}},
			{ID: "location", Title: "Lieu", Elements: []TemplateElement{
				{ID: "location", Type: ElementText, X: 50, Y: 40, Style: StyleSpec{FontSize: 18, FontFamily: "Inter", Color: "#1a1a1a", TextAlign: "center", Width: 80}},
				{ID: "map", Type: ElementMap, X: 50, Y: 70, Style: StyleSpec{Width: 90}},
			}},
			{ID: "rsvp", Title: "RSVP", Elements: []TemplateElement{{ID: "rsvp-form", Type: ElementRSVPForm, X: 50, Y: 50, Style: StyleSpec{Width: 85}}}},
			{ID: "end", Title: "Merci", Elements: []TemplateElement{
				{ID: "thanks", Type: ElementText, X: 50, Y: 40, Style: StyleSpec{FontSize: 24, FontFamily: "Montserrat", Color: "#1a1a1a", TextAlign: "center", FontWeight: "700"}, Content: "À BIENTÔT."},
				{ID: "qr", Type: ElementQRCode, X: 50, Y: 70, Style: StyleSpec{Width: 30}},
			}},
		},
	},
	{
		ID:          "floral",
		NumericID:   3,
		Name:        "Jardin Floral",
		Description: "Aquarelle, douceur et romantisme pour vos moments.",
		PreviewURL:  "/video3.mp4",
		BgColor:     "#fffafb",
		AccentColor: "#b27b8d",
		Fonts:       []string{"Great+Vibes", "Lato"},
		Pages: []TemplatePage{
			{ID: "cover", Title: "Accueil", Elements: []TemplateElement{{ID: "title", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 72, FontFamily: "Great Vibes", Color: "#b27b8d", TextAlign: "center"}}}},
			{ID: "details", Title: "Quand", Elements: []TemplateElement{{ID: "date", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 24, FontFamily: "Lato", Color: "#b27b8d", TextAlign: "center"}}}},
			{ID: "location", Title: "Où", Elements: []TemplateElement{
				{ID: "location", Type: ElementText, X: 50, Y: 40, Style: StyleSpec{FontSize: 18, FontFamily: "Lato", Color: "#4a4a4a", TextAlign: "center"}},
				{ID: "map", Type: ElementMap, X: 50, Y: 70, Style: StyleSpec{Width: 90}},
			}},
			{ID: "rsvp", Title: "RSVP", Elements: []TemplateElement{{ID: "rsvp-form", Type: ElementRSVPForm, X: 50, Y: 50, Style: StyleSpec{Width: 85}}}},
			{ID: "end", Title: "Merci", Elements: []TemplateElement{{ID: "thanks", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 32, FontFamily: "Great Vibes", Color: "#b27b8d", TextAlign: "center"}, Content: "Merci d’être là"}}},
		},
	},
	{
		ID:          "vintage",
		NumericID:   4,
		Name:        "Parchemin Antique",
		Description: "Style rétro, papier vieilli et charme d’autrefois.",
		PreviewURL:  "/video4.mp4",
		BgColor:     "#f4e0c8",
		AccentColor: "#4a3728",
		Fonts:       []string{"Tangerine", "Merriweather"},
		Pages: []TemplatePage{
			{ID: "cover", Title: "Accueil", Elements: []TemplateElement{{ID: "title", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 84, FontFamily: "Tangerine", Color: "#4a3728", TextAlign: "center", FontWeight: "bold"}}}},
			{ID: "details", Title: "Date", Elements: []TemplateElement{{ID: "date", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 20, FontFamily: "Merriweather", Color: "#4a3728", TextAlign: "center", Italic: true}}}},
			{ID: "location", Title: "Lieu", Elements: []TemplateElement{
				{ID: "location", Type: ElementText, X: 50, Y: 40, Style: StyleSpec{FontSize: 16, FontFamily: "Merriweather", Color: "#4a4a4a", TextAlign: "center"}},
				{ID: "map", Type: ElementMap, X: 50, Y: 70, Style: StyleSpec{Width: 90}},
			}},
			{ID: "rsvp", Title: "Réponse", Elements: []TemplateElement{{ID: "rsvp-form", Type: ElementRSVPForm, X: 50, Y: 50, Style: StyleSpec{Width: 85}}}},
			{ID: "end", Title: "Fin", Elements: []TemplateElement{{ID: "thanks", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 48, FontFamily: "Tangerine", Color: "#4a3728", TextAlign: "center"}, Content: "Bien à vous"}}},
		},
	},
	{
		ID:          "corporate",
		NumericID:   5,
		Name:        "Business Elite",
		Description: "Précision géométrique et professionnalisme moderne.",
		PreviewURL:  "/video5.mp4",
		BgColor:     "#f0f4f8",
		AccentColor: "#003366",
		Fonts:       []string{"Roboto", "Oswald"},
		Pages: []TemplatePage{
			{ID: "cover", Title: "Event", Elements: []TemplateElement{{ID: "title", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 40, FontFamily: "Oswald", Color: "#003366", TextAlign: "center", TextTransform: "uppercase"}}}},
			{ID: "details", Title: "Schedule", Elements: []TemplateElement{{ID: "date", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 20, FontFamily: "Roboto", Color: "#333333", TextAlign: "center", FontWeight: "bold"}}}},
			{ID: "location", Title: "Address", Elements: []TemplateElement{
				{ID: "location", Type: ElementText, X: 50, Y: 40, Style: StyleSpec{FontSize: 16, FontFamily: "Roboto", Color: "#333333", TextAlign: "center"}},
				{ID: "map", Type: ElementMap, X: 50, Y: 70, Style: StyleSpec{Width: 90}},
			}},
			{ID: "rsvp", Title: "Register", Elements: []TemplateElement{{ID: "rsvp-form", Type: ElementRSVPForm, X: 50, Y: 50, Style: StyleSpec{Width: 85}}}},
			{ID: "end", Title: "Network", Elements: []TemplateElement{{ID: "thanks", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 24, FontFamily: "Oswald", Color: "#003366", TextAlign: "center"}, Content: "JOIN THE NETWORK"}}},
		},
	},
	{
		ID:              "storyteller",
		NumericID:       6,
		Name:            "Éclat de Récit",
		Description:     "Une narration immersive façon \"Story\" pour raconter votre plus belle histoire.",
		PreviewURL:      "/video2.mp4",
		OpeningVideoURL: "/video2.mp4",
		BgColor:         "#fdfaf5",
		AccentColor:     "#D4AF37",
		Fonts:           []string{"Cormorant+Garamond", "Montserrat"},
		Story:           true,
		Pages: []TemplatePage{
			{
				ID:    "intro",
				Title: "Notre Histoire",
				BgURL: "https://images.unsplash.com/photo-1518133910546-b6c2fb7d79e3?auto=format&fit=crop&q=80&w=2000",
				Elements: []TemplateElement{
					{ID: "story-1", Type: ElementText, X: 50, Y: 80, Style: StyleSpec{FontSize: 24, FontFamily: "Cormorant Garamond", Color: "#ffffff", TextAlign: "center", Italic: true, Width: 80}, Content: "Tout a commencé un jour ordinaire..."},
				},
			},
			{
				ID:    "meeting",
				Title: "La Rencontre",
				BgURL: "https://images.unsplash.com/photo-1522673607200-1648832cee98?auto=format&fit=crop&q=80&w=2000",
				Elements: []TemplateElement{
					{ID: "story-2", Type: ElementText, X: 50, Y: 80, Style: StyleSpec{FontSize: 24, FontFamily: "Cormorant Garamond", Color: "#ffffff", TextAlign: "center", Italic: true, Width: 80}, Content: "Dans un petit café au coin de la rue."},
				},
			},
			{
				ID:    "proposal",
				Title: "L'Engagement",
				BgURL: "https://images.unsplash.com/photo-1515934751635-c81c6bc9a2d8?auto=format&fit=crop&q=80&w=2000",
				Elements: []TemplateElement{
					{ID: "title", Type: ElementText, X: 50, Y: 40, Style: StyleSpec{FontSize: 48, FontFamily: "Cormorant Garamond", Color: "#ffffff", TextAlign: "center", FontWeight: "bold"}},
					{ID: "names", Type: ElementText, X: 50, Y: 55, Style: StyleSpec{FontSize: 24, FontFamily: "Cormorant Garamond", Color: "#D4AF37", TextAlign: "center", Italic: true}},
					{ID: "story-3", Type: ElementText, X: 50, Y: 80, Style: StyleSpec{FontSize: 18, FontFamily: "Montserrat", Color: "#ffffff", TextAlign: "center", TextTransform: "uppercase", LetterSpacing: "0.2em"}, Content: "Dites OUI à notre bonheur"},
				},
			},
			{
				ID:    "details",
				Title: "Le Jour J",
				BgURL: "https://images.unsplash.com/photo-1469334031218-e382a71b716b?auto=format&fit=crop&q=80&w=2000",
				Elements: []TemplateElement{
					{ID: "date", Type: ElementText, X: 50, Y: 30, Style: StyleSpec{FontSize: 32, FontFamily: "Cormorant Garamond", Color: "#ffffff", TextAlign: "center"}},
					{ID: "location", Type: ElementText, X: 50, Y: 50, Style: StyleSpec{FontSize: 18, FontFamily: "Montserrat", Color: "#ffffff", TextAlign: "center", Width: 80}},
					{ID: "map", Type: ElementMap, X: 50, Y: 75, Style: StyleSpec{Width: 90}},
				},
			},
			{
				ID:      "rsvp",
				Title:   "Confirmez",
				BgColor: "#1a1a1a",
				Elements: []TemplateElement{
					{ID: "rsvp-title", Type: ElementText, X: 50, Y: 20, Style: StyleSpec{FontSize: 28, FontFamily: "Cormorant Garamond", Color: "#D4AF37", TextAlign: "center"}, Content: "Serez-vous des nôtres ?"},
					{ID: "rsvp-form", Type: ElementRSVPForm, X: 50, Y: 55, Style: StyleSpec{Width: 90}},
				},
			},
		},
	},
	{
		ID:              "majestic_story",
		NumericID:       7,
		Name:            "Majestic Story",
		Description:     "Une expérience cinématographique ultime avec ouverture vidéo et tableau de bord complet.",
		PreviewURL:      "/video2.mp4",
		OpeningVideoURL: "/video2.mp4",
		BgColor:         "#fdfaf5",
		AccentColor:     "#D4AF37",
		Fonts:           []string{"Playfair+Display", "Allison", "Montserrat"},
		Story:           true,
		Pages: []TemplatePage{
			{ID: "story-1", Title: "Le Début", BgURL: "https://images.unsplash.com/photo-1510076857177-7470076d4098?q=80&w=2000", Elements: []TemplateElement{{ID: "s1", Type: ElementText, X: 50, Y: 80, Style: StyleSpec{FontSize: 28, FontFamily: "Allison", Color: "#ffffff", TextAlign: "center", Width: 80}, Content: "Tout a commencé par un simple regard..."}}},
			{ID: "story-2", Title: "Complicité", BgURL: "https://images.unsplash.com/photo-1516589174184-c685bc016a30?q=80&w=2000", Elements: []TemplateElement{{ID: "s2", Type: ElementText, X: 50, Y: 80, Style: StyleSpec{FontSize: 28, FontFamily: "Allison", Color: "#ffffff", TextAlign: "center", Width: 80}, Content: "Nos rires sont devenus notre plus belle mélodie."}}},
			{ID: "story-3", Title: "Voyage", BgURL: "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?q=80&w=2000", Elements: []TemplateElement{{ID: "s3", Type: ElementText, X: 50, Y: 80, Style: StyleSpec{FontSize: 28, FontFamily: "Allison", Color: "#ffffff", TextAlign: "center", Width: 80}, Content: "Main dans la main, nous avons parcouru le monde."}}},
			{ID: "story-4", Title: "Engagement", BgURL: "https://images.unsplash.com/photo-1522673607200-1648832cee98?q=80&w=2000", Elements: []TemplateElement{{ID: "s4", Type: ElementText, X: 50, Y: 80, Style: StyleSpec{FontSize: 28, FontFamily: "Allison", Color: "#ffffff", TextAlign: "center", Width: 80}, Content: "Une promesse pour la vie."}}},
			{ID: "story-5", Title: "Demande", BgURL: "https://images.unsplash.com/photo-1515934751635-c81c6bc9a2d8?q=80&w=2000", Elements: []TemplateElement{{ID: "s5", Type: ElementText, X: 50, Y: 80, Style: StyleSpec{FontSize: 28, FontFamily: "Allison", Color: "#ffffff", TextAlign: "center", Width: 80}, Content: "Sous un ciel étoilé, j'ai dit OUI."}}},
			{ID: "story-6", Title: "Préparatifs", BgURL: "https://images.unsplash.com/photo-1519225421980-715cb0215aed?q=80&w=2000", Elements: []TemplateElement{{ID: "s6", Type: ElementText, X: 50, Y: 80, Style: StyleSpec{FontSize: 28, FontFamily: "Allison", Color: "#ffffff", TextAlign: "center", Width: 80}, Content: "Chaque détail compte."}}},
			{ID: "story-7", Title: "La Promesse", BgURL: "https://images.unsplash.com/photo-1469334031218-e382a71b716b?q=80&w=2000", Elements: []TemplateElement{{ID: "s7", Type: ElementText, X: 50, Y: 80, Style: StyleSpec{FontSize: 28, FontFamily: "Allison", Color: "#ffffff", TextAlign: "center", Width: 80}, Content: "Notre plus belle aventure commence."}}},
			{ID: "story-8", Title: "Invitation", BgURL: "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?q=80&w=2000", Elements: []TemplateElement{
				{ID: "title", Type: ElementText, X: 50, Y: 40, Style: StyleSpec{FontSize: 40, FontFamily: "Playfair Display", Color: "#ffffff", TextAlign: "center", FontWeight: "bold"}},
				{ID: "names", Type: ElementText, X: 50, Y: 55, Style: StyleSpec{FontSize: 32, FontFamily: "Allison", Color: "#D4AF37", TextAlign: "center"}},
			}},
			{
				ID:      "dashboard",
				Title:   "Infos Utiles",
				BgColor: "#0f172a",
				Elements: []TemplateElement{
					{ID: "section-title", Type: ElementText, X: 50, Y: 5, Style: StyleSpec{FontSize: 20, FontFamily: "Playfair Display", Color: "#D4AF37", TextAlign: "center", TextTransform: "uppercase", LetterSpacing: "0.3em"}, Content: "Détails de la Célébration"},
					{ID: "countdown", Type: ElementCountdown, X: 50, Y: 15, Style: StyleSpec{Width: 90}},
					{ID: "date", Type: ElementText, X: 50, Y: 25, Style: StyleSpec{FontSize: 22, FontFamily: "Playfair Display", Color: "#ffffff", TextAlign: "center"}},
					{ID: "location-title", Type: ElementText, X: 50, Y: 35, Style: StyleSpec{FontSize: 18, FontFamily: "Playfair Display", Color: "#D4AF37", TextAlign: "center"}, Content: "Le Lieu Magique"},
					{ID: "location", Type: ElementText, X: 50, Y: 42, Style: StyleSpec{FontSize: 14, FontFamily: "Montserrat", Color: "#ffffff", TextAlign: "center", Width: 80}},
					{ID: "map", Type: ElementMap, X: 50, Y: 55, Style: StyleSpec{Width: 90}},
					{ID: "gift-list-title", Type: ElementText, X: 50, Y: 70, Style: StyleSpec{FontSize: 18, FontFamily: "Playfair Display", Color: "#D4AF37", TextAlign: "center"}, Content: "Liste de Mariage"},
					{ID: "gift-list", Type: ElementGiftList, X: 50, Y: 78, Style: StyleSpec{Width: 85}},
					{ID: "rsvp-title", Type: ElementText, X: 50, Y: 88, Style: StyleSpec{FontSize: 20, FontFamily: "Playfair Display", Color: "#D4AF37", TextAlign: "center"}, Content: "Confirmez votre présence"},
					{ID: "rsvp-form", Type: ElementRSVPForm, X: 50, Y: 95, Style: StyleSpec{Width: 90}},
				},
			},
		},
	},
}
