package stepview

import (
	"github.com/llehouerou/stepviz/internal/deck"
	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/ui/render"
	"github.com/llehouerou/stepviz/internal/ui/styles"
)

func renderSlide(p *i18n.Printer, snap deck.Snapshot, width int) string {
	t := styles.T()
	st := t.S()

	counter := st.Muted.Render(p.Sprintf("view.slide", snap.Number, snap.Total))
	duration := st.Subtle.Render(deck.FormatClock(snap.Duration))

	return render.Row(counter, duration, width) + "\n\n" +
		t.GradientTitle(render.Truncate(snap.Title, width)) + "\n\n" +
		st.Base.Render(render.Wrap(snap.Body, width))
}
