// Package fetch retrieves detail pages and keeps them in an on-disk cache.
//
// Pages are cached forever under <cacheDir>/<kind>/<id>.html and never
// re-requested once cached. Requests are never retried: a page that cannot
// be fetched becomes an empty placeholder so the ids of later pages do not
// shift. The Fetcher paces requests with a rate limiter and runs a bounded
// number of them at once; results are written into id-indexed slots, so the
// returned order never depends on timing.
package fetch
