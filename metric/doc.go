// Copyright © 2023 The Gomon Project.

/*
Package metric publishes vnstat's traffic accounting as Prometheus gauges.
The registry is owned here and handed to the web server for scraping; each
publish overwrites a gauge's value, so a scrape always observes the figures
of the latest successful collection.
*/
package metric
