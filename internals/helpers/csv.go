package helper

import (
	"bytes"
	"encoding/csv"

	"github.com/gofiber/fiber/v2"
)

// WriteCSV renders a header row plus data rows with standard quote escaping.
// The old client-side export joined raw values with commas and broke on
// embedded quotes; encoding/csv handles that.
func WriteCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SendCSV writes a CSV download response.
func SendCSV(c *fiber.Ctx, filename string, header []string, rows [][]string) error {
	b, err := WriteCSV(header, rows)
	if err != nil {
		return JsonError(c, fiber.StatusInternalServerError, "failed to build CSV")
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(b)
}
