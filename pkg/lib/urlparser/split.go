package urlparser

import (
	"errors"
	"strings"
)

var ErrBadPath = errors.New("wrong url format")

// PathParams holds the segments of a REST-ish path:
// /{collection}[/{id}[/{sub}[/{subId}]]].
type PathParams struct {
	Collection string
	Id         string
	Sub        string
	SubId      string
}

func Parse(path string) (PathParams, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return PathParams{}, ErrBadPath
	}
	parts := strings.Split(trimmed, "/")

	params := PathParams{}

	switch len(parts) {
	case 4:
		params.SubId = parts[3]
		fallthrough
	case 3:
		params.Sub = parts[2]
		fallthrough
	case 2:
		params.Id = parts[1]
		fallthrough
	case 1:
		params.Collection = parts[0]
		return params, nil
	default:
		return PathParams{}, ErrBadPath
	}
}
