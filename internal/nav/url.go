package nav

import (
	"fmt"
	"net/url"
	"strconv"
)

// DefaultPageParam is the query parameter carrying the page number.
const DefaultPageParam = "page"

// URLFunc returns the link target for a page.
type URLFunc func(page int) string

// QueryURL returns a URLFunc rooted at rawURL. Each generated link is rawURL
// with param set to the page number and every other query parameter left as
// it was. An empty param selects DefaultPageParam.
func QueryURL(rawURL, param string) (URLFunc, error) {
	if param == "" {
		param = DefaultPageParam
	}

	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", rawURL, err)
	}
	query := base.Query()

	return func(page int) string {
		q := make(url.Values, len(query)+1)
		for k, v := range query {
			q[k] = append([]string(nil), v...)
		}
		q.Set(param, strconv.Itoa(page))

		u := *base
		u.RawQuery = q.Encode()
		return u.String()
	}, nil
}
