package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// parseDate lê um parâmetro de query no formato YYYY-MM-DD.
func parseDate(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("parâmetro %s é obrigatório", name)
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parâmetro %s deve estar no formato YYYY-MM-DD", name)
	}
	return t, nil
}

// parsePeriod lê start e end e devolve o intervalo [start 00:00, end 23:59:59.999...].
func parsePeriod(c *fiber.Ctx) (start, end time.Time, err error) {
	start, err = parseDate(c, "start")
	if err != nil {
		return
	}
	end, err = parseDate(c, "end")
	if err != nil {
		return
	}
	if end.Before(start) {
		err = fmt.Errorf("end não pode ser anterior a start")
		return
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return
}
