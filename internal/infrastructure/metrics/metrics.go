package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wellspring_blog_lookup_cache_hits_total",
		Help: "Single-post lookups served from cache.",
	})
	lookupMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wellspring_blog_lookup_cache_misses_total",
		Help: "Single-post lookups that queried the document store.",
	})
	resourceListHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wellspring_resource_list_cache_hits_total",
		Help: "Resource listings served from cache.",
	})
	resourceListMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wellspring_resource_list_cache_misses_total",
		Help: "Resource listings that queried the document store.",
	})
)

func IncLookupHit()        { lookupHits.Inc() }
func IncLookupMiss()       { lookupMisses.Inc() }
func IncResourceListHit()  { resourceListHits.Inc() }
func IncResourceListMiss() { resourceListMisses.Inc() }
