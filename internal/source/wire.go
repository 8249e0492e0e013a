package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/idilsaglam/littlelemon/internal/model"
)

// Payload is the remote document: {"menu": [...]}.
type Payload struct {
	Menu *[]WireItem `json:"menu"`
}

// WireItem is one remote menu entry before flattening.
type WireItem struct {
	ID       WireID       `json:"id"`
	Title    string       `json:"title"`
	Price    string       `json:"price"`
	Category WireCategory `json:"category"`
}

// WireID accepts a JSON number or string and keeps its text form.
type WireID string

func (id *WireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = WireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = WireID(n.String())
	return nil
}

// MarshalJSON writes integer IDs as numbers, anything else as a string.
func (id WireID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// WireCategory accepts either "Salads" or {"title": "Salads"}.
type WireCategory struct {
	Title string `json:"title"`
}

func (c *WireCategory) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &c.Title)
	}
	var obj struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	c.Title = obj.Title
	return nil
}

// DecodePayload reads a remote document and flattens it into menu items.
func DecodePayload(r io.Reader) ([]model.MenuItem, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if p.Menu == nil {
		return nil, fmt.Errorf("%w: missing menu", ErrMalformed)
	}
	items := make([]model.MenuItem, 0, len(*p.Menu))
	for i, w := range *p.Menu {
		if w.ID == "" {
			return nil, fmt.Errorf("%w: entry %d has no id", ErrMalformed, i)
		}
		if w.Category.Title == "" {
			return nil, fmt.Errorf("%w: entry %d has no category", ErrMalformed, i)
		}
		items = append(items, model.MenuItem{
			ID:       string(w.ID),
			Title:    w.Title,
			Price:    w.Price,
			Category: w.Category.Title,
		})
	}
	return items, nil
}

// EncodePayload is the inverse of DecodePayload. Categories are written
// in the nested {"title": ...} form.
func EncodePayload(items []model.MenuItem) Payload {
	menu := make([]WireItem, 0, len(items))
	for _, it := range items {
		menu = append(menu, WireItem{
			ID:       WireID(it.ID),
			Title:    it.Title,
			Price:    it.Price,
			Category: WireCategory{Title: it.Category},
		})
	}
	return Payload{Menu: &menu}
}
