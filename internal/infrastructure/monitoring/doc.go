/*
Package monitoring provides Prometheus metrics for the location service.

# Overview

Each Metrics value owns a private registry carrying HTTP request metrics,
tool call metrics, the live session gauge and the link-open failure counter.
Metrics satisfies the location provider's Recorder interface.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(monitoring.Handler(metrics)))

	timer := monitoring.NewTimer(metrics, "location.set")
	// ... execute the tool ...
	timer.Stop("success")
*/
package monitoring
