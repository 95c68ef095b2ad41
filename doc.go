// Copyright © 2023 The Gomon Project.

/*
Package main implements the Go language "vnmon" command, which exports the
network traffic accounting that vnstat maintains as Prometheus gauges.
Periodically it queries vnstat for its JSON report and publishes the most
recent entry of each accounting window for each network interface:
  - vnstat_traffic_5min:    Traffic in the last 5 minutes
  - vnstat_traffic_hourly:  Hourly network traffic
  - vnstat_traffic_daily:   Daily network traffic
  - vnstat_traffic_monthly: Monthly network traffic
  - vnstat_traffic_yearly:  Yearly network traffic
  - vnstat_traffic_total:   Total network traffic

Each gauge is labeled with the interface name and the traffic direction,
rx for received and tx for transmitted bytes.

The command defines the following command line flags:
  - -port:      to set the port for serving the /metrics and /ws endpoints (default 9469)
  - -interval:  to specify the vnstat query interval in seconds (default 60)
  - -daemon:    to log at warning level and above only, for running under a service manager
  - -vnstat:    to set the path of the vnstat command
  - -interface: to limit the query to one network interface
  - -timeout:   to bound how long a vnstat query may run
*/
package main
