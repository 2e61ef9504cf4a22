package reddit

import "pressbox-service/internal/domain"

// Reddit listing envelopes. The search and comments endpoints both return
// `{ kind, data: { children: [ { kind, data } ] } }`; comments come as a
// two-element array of listings (post, then comments).

type listing struct {
	Kind string      `json:"kind"`
	Data listingData `json:"data"`
}

type listingData struct {
	Children []child `json:"children"`
	After    string  `json:"after"`
}

type child struct {
	Kind string      `json:"kind"`
	Data domain.Post `json:"data"`
}

type commentListing struct {
	Kind string             `json:"kind"`
	Data commentListingData `json:"data"`
}

type commentListingData struct {
	Children []commentChild `json:"children"`
}

type commentChild struct {
	Kind string         `json:"kind"`
	Data domain.Comment `json:"data"`
}

// kindComment marks a comment child ("t1"); listings also interleave
// "more" stubs which carry no body.
const kindComment = "t1"
