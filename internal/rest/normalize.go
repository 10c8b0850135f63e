// Package rest implements the domain service interfaces as thin typed
// wrappers over the backend gateways. Pure request/response mapping lives
// here; no business logic.
package rest

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/velora-jewels/storefront-go/internal/gateway"
)

// listPage is the canonical shape every list endpoint is normalized into.
type listPage struct {
	items      jx.Raw
	total      int
	page       int
	totalPages int
}

// normalizeList decodes a list response that is either a bare JSON array or a
// wrapped object {<key>: [...], total, page, totalPages} into one canonical
// shape. The backends are inconsistent about which form they return, so the
// discrimination happens here, once, at the service boundary.
func normalizeList[T any](raw []byte, key string) ([]T, listPage, error) {
	var page listPage

	d := jx.DecodeBytes(raw)
	switch d.Next() {
	case jx.Array:
		page.items = jx.Raw(raw)
	case jx.Object:
		err := d.Obj(func(d *jx.Decoder, k string) error {
			switch k {
			case key:
				r, err := d.Raw()
				if err != nil {
					return errors.Wrapf(err, "read %q", k)
				}
				page.items = r
				return nil
			case "total":
				n, err := d.Int()
				if err != nil {
					return errors.Wrap(err, "read total")
				}
				page.total = n
				return nil
			case "page":
				n, err := d.Int()
				if err != nil {
					return errors.Wrap(err, "read page")
				}
				page.page = n
				return nil
			case "totalPages":
				n, err := d.Int()
				if err != nil {
					return errors.Wrap(err, "read totalPages")
				}
				page.totalPages = n
				return nil
			default:
				return d.Skip()
			}
		})
		if err != nil {
			return nil, page, errors.Wrap(err, "decode list envelope")
		}
		if page.items == nil {
			return nil, page, errors.Errorf("list response missing %q", key)
		}
	default:
		return nil, page, errors.New("list response is neither array nor object")
	}

	var items []T
	if err := json.Unmarshal(page.items, &items); err != nil {
		return nil, page, errors.Wrap(err, "decode list items")
	}

	// Bare arrays and sloppy envelopes carry no counts; fall back to what we
	// can see locally.
	if page.total == 0 {
		page.total = len(items)
	}
	if page.page == 0 {
		page.page = 1
	}
	if page.totalPages == 0 && len(items) > 0 {
		page.totalPages = 1
	}

	return items, page, nil
}

// statusIs reports whether err is a gateway APIError with the given HTTP
// status code.
func statusIs(err error, code int) bool {
	var apiErr *gateway.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
