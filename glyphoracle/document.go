package glyphoracle

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"oss.terrastruct.com/util-go/xdefer"

	"oss.terrastruct.com/glyphs/glyphtarget"
)

// UpdatePage replaces one page of d with the result of fn. Only the
// document's page list is copied.
func UpdatePage(d *glyphtarget.Document, pageID string, fn func(*glyphtarget.Page) (*glyphtarget.Page, error)) (_ *glyphtarget.Document, err error) {
	defer xdefer.Errorf(&err, "failed to update page %#v", pageID)

	i := d.PageIndex(pageID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, pageID)
	}
	p, err := fn(d.Pages[i])
	if err != nil {
		return nil, err
	}
	d = d.Copy()
	d.Pages[i] = p
	return d, nil
}

// AddPage appends an empty page. An empty name becomes "Page N".
func AddPage(d *glyphtarget.Document, name string) (*glyphtarget.Document, string) {
	if name == "" {
		name = fmt.Sprintf("Page %d", len(d.Pages)+1)
	}
	p := glyphtarget.NewPage("page-"+uuid.NewString(), name)
	d = d.Copy()
	d.Pages = append(d.Pages, p)
	return d, p.ID
}

func RenamePage(d *glyphtarget.Document, pageID, name string) (*glyphtarget.Document, error) {
	return UpdatePage(d, pageID, func(p *glyphtarget.Page) (*glyphtarget.Page, error) {
		p = p.Copy()
		p.Name = name
		return p, nil
	})
}

// DeletePage removes a page. The last page of a document cannot be deleted.
func DeletePage(d *glyphtarget.Document, pageID string) (_ *glyphtarget.Document, err error) {
	defer xdefer.Errorf(&err, "failed to delete page %#v", pageID)

	i := d.PageIndex(pageID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, pageID)
	}
	if len(d.Pages) == 1 {
		return nil, errors.New("cannot delete the last page")
	}
	d = d.Copy()
	d.Pages = append(d.Pages[:i], d.Pages[i+1:]...)
	return d, nil
}
