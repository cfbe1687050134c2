package video

import (
	"bytes"
	"fmt"
	"html/template"
)

// FallbackNone covers both load failures and an empty list; the visitor
// cannot tell them apart and should not have to.
const FallbackNone = "Zurzeit können keine Videos angezeigt werden."

const revealStepMillis = 80

type videoCard struct {
	EmbedURL string
	Title    string
	Delay    int
}

var cardsTemplate = template.Must(template.New("video-cards").Parse(`{{range .}}<figure class="video-card reveal-item" style="transition-delay: {{.Delay}}ms">
    <div class="video-frame">
        <iframe src="{{.EmbedURL}}" title="{{.Title}}" loading="lazy" allow="encrypted-media; picture-in-picture" allowfullscreen></iframe>
    </div>
    <figcaption class="video-caption">{{.Title}}</figcaption>
</figure>
{{end}}`))

// RenderCards renders the videos as escaped embed cards. The title doubles
// as the iframe's accessibility label.
func RenderCards(videos []Video) (template.HTML, error) {
	cards := make([]videoCard, 0, len(videos))
	for i, v := range videos {
		cards = append(cards, videoCard{
			EmbedURL: EmbedURL(v.ID),
			Title:    v.Title,
			Delay:    i * revealStepMillis,
		})
	}

	var buf bytes.Buffer
	if err := cardsTemplate.Execute(&buf, cards); err != nil {
		return "", fmt.Errorf("render video cards: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func messageFragment(msg string) template.HTML {
	return template.HTML(`<p class="section-fallback">` + template.HTMLEscapeString(msg) + `</p>`)
}
