package build

import (
	"crypto/md5"
	"math/big"
	"strings"
	"time"

	"github.com/cinfoposte/unicef-jobs/internal/domain"
	"github.com/cinfoposte/unicef-jobs/internal/textutil"
)

const guidLen = 16

// SearchableText is the corpus the classifier sees: title, plain-text
// description and every category, space-joined.
func SearchableText(l domain.RawListing) string {
	parts := make([]string, 0, 2+len(l.Categories))
	parts = append(parts, l.Title, textutil.StripHTML(l.Description))
	parts = append(parts, l.Categories...)
	return strings.Join(parts, " ")
}

// GUID derives a stable 16-digit id from a link. The feed has no ids of its
// own, so the same link must always give the same value.
func GUID(link string) string {
	sum := md5.Sum([]byte(link))
	digits := new(big.Int).SetBytes(sum[:]).String()
	if len(digits) >= guidLen {
		return digits[:guidLen]
	}
	return digits + strings.Repeat("0", guidLen-len(digits))
}

type Builder struct {
	SourceName string
	Now        func() time.Time
}

func NewBuilder(sourceName string) *Builder {
	return &Builder{SourceName: sourceName, Now: time.Now}
}

// OutputItem builds the emitted record for an included listing.
func (b *Builder) OutputItem(l domain.RawListing, sourceURL string) domain.OutputItem {
	pub := ParsePublished(l.PublishedRaw, b.Now)
	return domain.OutputItem{
		Title:       l.Title,
		Link:        l.Link,
		Description: textutil.StripHTML(l.Description),
		GUID:        GUID(l.Link),
		Published:   pub,
		PubDate:     FormatRFC2822(pub),
		SourceURL:   sourceURL,
		SourceName:  b.SourceName,
	}
}
