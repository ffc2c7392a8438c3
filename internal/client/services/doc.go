// Package services contains the data-fetching layer: thin query/mutation
// wrappers over the HTTP core, one service per backend resource, with the
// read-side caching policy the views rely on.
package services
