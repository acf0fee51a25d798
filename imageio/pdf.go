package imageio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/cub"
)

// EncodePDF writes c as a one-page PDF. The page measures one point per
// pixel and holds the canvas as an embedded PNG image.
func EncodePDF(w io.Writer, c *cub.Canvas) error {
	var img bytes.Buffer
	if err := EncodePNG(&img, c); err != nil {
		return err
	}

	width, height := float64(c.Width()), float64(c.Height())
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetCreator("cub "+cub.Version, false)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &img)
	pdf.ImageOptions("canvas", 0, 0, width, height, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("imageio: encode PDF: %w", err)
	}
	return nil
}
