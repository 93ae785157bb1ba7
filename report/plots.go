package report

import (
	"os"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// ModelPredictions pairs a model's display name with its holdout
// predictions, aligned row for row with the shared true target.
type ModelPredictions struct {
	Name string
	Pred *mat.VecDense
}

var identityDashes = []vg.Length{vg.Points(4), vg.Points(3)}

// ScatterGrid renders one predicted-vs-true scatter panel per model in a
// single row, each with a dashed identity line, and writes the figure as a
// PNG to path.
func ScatterGrid(yTrue *mat.VecDense, preds []ModelPredictions, path string) error {
	if len(preds) == 0 {
		return errors.NewValueError("report.ScatterGrid", "no predictions")
	}

	row := make([]*plot.Plot, len(preds))
	for k, mp := range preds {
		if mp.Pred.Len() != yTrue.Len() {
			return errors.NewDimensionError("report.ScatterGrid", yTrue.Len(), mp.Pred.Len(), 0)
		}

		p := plot.New()
		p.Title.Text = mp.Name
		p.X.Label.Text = "true charges"
		p.Y.Label.Text = "predicted charges"

		pts := make(plotter.XYs, yTrue.Len())
		lo, hi := yTrue.AtVec(0), yTrue.AtVec(0)
		for i := 0; i < yTrue.Len(); i++ {
			pts[i].X = yTrue.AtVec(i)
			pts[i].Y = mp.Pred.AtVec(i)
			if pts[i].X < lo {
				lo = pts[i].X
			}
			if pts[i].X > hi {
				hi = pts[i].X
			}
		}

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrap(err, "report.ScatterGrid: scatter")
		}
		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Color = plotutil.Color(k)
		p.Add(scatter)

		identity, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
		if err != nil {
			return errors.Wrap(err, "report.ScatterGrid: identity line")
		}
		identity.LineStyle.Dashes = identityDashes
		p.Add(identity)

		row[k] = p
	}

	const panel = 4 * vg.Inch
	img := vgimg.New(panel*vg.Length(len(preds)), panel)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(preds),
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for k := range row {
		row[k].Draw(canvases[0][k])
	}

	return writePNG(img, path)
}

// SortedOverlay renders the true target sorted ascending as a solid
// reference line, with each model's predictions reordered by that sort as
// dashed lines, and writes the figure as a PNG to path.
func SortedOverlay(yTrue *mat.VecDense, preds []ModelPredictions, path string) error {
	if len(preds) == 0 {
		return errors.NewValueError("report.SortedOverlay", "no predictions")
	}

	n := yTrue.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return yTrue.AtVec(order[a]) < yTrue.AtVec(order[b])
	})

	p := plot.New()
	p.Title.Text = "Holdout comparison (sorted by true charges)"
	p.X.Label.Text = "holdout record (sorted)"
	p.Y.Label.Text = "charges"

	truth := make(plotter.XYs, n)
	for i, src := range order {
		truth[i].X = float64(i)
		truth[i].Y = yTrue.AtVec(src)
	}
	truthLine, err := plotter.NewLine(truth)
	if err != nil {
		return errors.Wrap(err, "report.SortedOverlay: truth line")
	}
	truthLine.LineStyle.Width = vg.Points(1.5)
	p.Add(truthLine)
	p.Legend.Add("true", truthLine)

	for k, mp := range preds {
		if mp.Pred.Len() != n {
			return errors.NewDimensionError("report.SortedOverlay", n, mp.Pred.Len(), 0)
		}
		pts := make(plotter.XYs, n)
		for i, src := range order {
			pts[i].X = float64(i)
			pts[i].Y = mp.Pred.AtVec(src)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return errors.Wrap(err, "report.SortedOverlay: "+mp.Name)
		}
		line.LineStyle.Color = plotutil.Color(k)
		line.LineStyle.Dashes = identityDashes
		p.Add(line)
		p.Legend.Add(mp.Name, line)
	}
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

func writePNG(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "report.writePNG: create %s", path)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "report.writePNG: write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "report.writePNG: close %s", path)
	}
	return nil
}
