// Package filter provides per-pixel filters for raw RGB images.
//
// Every filter is a point operation: the new value of a pixel depends only
// on its own original value (and, for [Split], on its column), so pixels
// can be processed in any order and the image is updated in place.
//
// The exercise rule is available as [NewSplit]: the left half of the image
// is converted to grayscale using Rec. 601 luma weights and the right half
// is brightened by a factor of 1.5.
package filter
