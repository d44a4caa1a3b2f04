package render

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/pageforge/document"
)

// flexAlign maps a text alignment to its flexbox counterpart so hero content
// and text line up the same way.
func flexAlign(alignment string) string {
	switch alignment {
	case "left":
		return "flex-start"
	case "right":
		return "flex-end"
	default:
		return "center"
	}
}

func hero(cfg document.HeroConfig) templ.Component {
	return component(func(b *strings.Builder) {
		class := "pf-hero"
		style := fmt.Sprintf("color:%s;text-align:%s;align-items:%s;", esc(cfg.TextColor), esc(cfg.Alignment), flexAlign(cfg.Alignment))
		switch cfg.BackgroundType {
		case "color":
			style += fmt.Sprintf("background-color:%s;", esc(cfg.BackgroundValue))
		case "image":
			style += fmt.Sprintf("background-image:url('%s');background-size:cover;background-position:center;", esc(cfg.BackgroundValue))
		default:
			// gradient: the value is a stylesheet class token
			class += " " + esc(cfg.BackgroundValue)
		}
		fmt.Fprintf(b, `<section class="%s" style="%s">`, class, style)
		fmt.Fprintf(b, `<h1>%s</h1>`, esc(cfg.Title))
		if cfg.Subtitle != "" {
			fmt.Fprintf(b, `<p class="pf-hero-subtitle">%s</p>`, esc(cfg.Subtitle))
		}
		if cfg.ShowCTA && cfg.CTAText != "" {
			fmt.Fprintf(b, `<a class="pf-button" href="%s">%s</a>`, esc(cfg.CTAURL), esc(cfg.CTAText))
		}
		b.WriteString(`</section>`)
	})
}

// text renders operator-authored HTML verbatim. The document is trusted
// content: pages are composed by authenticated operators, not visitors, so
// no sanitization happens here. Exposing this to untrusted authors would
// require adding one.
func text(cfg document.TextConfig) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<div class="pf-text" style="max-width:%s;text-align:%s;margin-left:auto;margin-right:auto;">`,
			esc(cfg.MaxWidth), esc(cfg.Alignment))
		b.WriteString(cfg.Content)
		b.WriteString(`</div>`)
	})
}

func imageBlock(cfg document.ImageConfig) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<figure class="pf-image" style="max-width:%s;text-align:%s;">`, esc(cfg.MaxWidth), esc(cfg.Alignment))
		if cfg.Src == "" {
			b.WriteString(`<div class="pf-image-placeholder">No image selected</div>`)
		} else {
			style := ""
			if cfg.Rounded {
				style = ` style="border-radius:12px;"`
			}
			fmt.Fprintf(b, `<img src="%s" alt="%s"%s>`, esc(cfg.Src), esc(cfg.Alt), style)
			if cfg.Caption != "" {
				fmt.Fprintf(b, `<figcaption>%s</figcaption>`, esc(cfg.Caption))
			}
		}
		b.WriteString(`</figure>`)
	})
}

func video(cfg document.VideoConfig) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<div class="pf-video">`)
		defer b.WriteString(`</div>`)

		if cfg.URL == "" {
			b.WriteString(`<div class="pf-video-invalid">No video URL configured</div>`)
			return
		}
		switch cfg.Provider {
		case "direct":
			attrs := " controls"
			if cfg.Autoplay {
				attrs += " autoplay"
			}
			if cfg.Muted {
				attrs += " muted"
			}
			fmt.Fprintf(b, `<video src="%s"%s></video>`, esc(cfg.URL), attrs)
		default:
			src, ok := EmbedURL(cfg.Provider, cfg.URL, cfg.Autoplay, cfg.Muted)
			if !ok {
				b.WriteString(`<div class="pf-video-invalid">Invalid video URL</div>`)
				return
			}
			fmt.Fprintf(b, `<iframe src="%s" title="%s" frameborder="0" allowfullscreen></iframe>`, esc(src), esc(cfg.Title))
		}
	})
}

func cta(cfg document.CTAConfig) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<section class="pf-cta" style="background-color:%s;">`, esc(cfg.BackgroundColor))
		fmt.Fprintf(b, `<h2>%s</h2>`, esc(cfg.Title))
		if cfg.Description != "" {
			fmt.Fprintf(b, `<p>%s</p>`, esc(cfg.Description))
		}
		fmt.Fprintf(b, `<a class="pf-button" href="%s">%s</a>`, esc(cfg.ButtonURL), esc(cfg.ButtonText))
		b.WriteString(`</section>`)
	})
}

func features(cfg document.FeaturesConfig) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<section class="pf-features">`)
		if cfg.Title != "" {
			fmt.Fprintf(b, `<h2>%s</h2>`, esc(cfg.Title))
		}
		fmt.Fprintf(b, `<div class="pf-features-grid" style="display:grid;grid-template-columns:repeat(%d,1fr);gap:24px;">`, cfg.Columns)
		for _, item := range cfg.Items {
			b.WriteString(`<div class="pf-feature">`)
			fmt.Fprintf(b, `<h3>%s</h3>`, esc(item.Title))
			if item.Description != "" {
				fmt.Fprintf(b, `<p>%s</p>`, esc(item.Description))
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div></section>`)
	})
}

func testimonial(cfg document.TestimonialConfig) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<section class="pf-testimonial">`)
		b.WriteString(`<div class="pf-stars">`)
		for i := 1; i <= 5; i++ {
			if i <= cfg.Rating {
				b.WriteString(`<span class="pf-star-filled">★</span>`)
			} else {
				b.WriteString(`<span class="pf-star-empty">☆</span>`)
			}
		}
		b.WriteString(`</div>`)
		fmt.Fprintf(b, `<blockquote>%s</blockquote>`, esc(cfg.Quote))
		b.WriteString(`<div class="pf-testimonial-author">`)
		if cfg.Avatar != "" {
			fmt.Fprintf(b, `<img src="%s" alt="%s">`, esc(cfg.Avatar), esc(cfg.Author))
		}
		fmt.Fprintf(b, `<span>%s</span>`, esc(cfg.Author))
		if cfg.Role != "" {
			fmt.Fprintf(b, `<span class="pf-testimonial-role">%s</span>`, esc(cfg.Role))
		}
		b.WriteString(`</div></section>`)
	})
}

func divider(cfg document.DividerConfig) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<hr class="pf-divider" style="border:none;border-top:%dpx %s %s;width:%s;margin:%s auto;">`,
			cfg.Thickness, esc(cfg.Style), esc(cfg.Color), esc(cfg.Width), esc(cfg.Margin))
	})
}

func spacer(cfg document.SpacerConfig) templ.Component {
	return component(func(b *strings.Builder) {
		fmt.Fprintf(b, `<div class="pf-spacer" style="height:%dpx;"></div>`, cfg.Height)
	})
}
