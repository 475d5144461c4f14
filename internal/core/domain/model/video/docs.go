// Package video provides the Video catalog entity: a purchasable item with a
// title and a price. Orders read the price once at creation time and keep
// their own copy per line, so the catalog price can change freely afterwards.
package video
