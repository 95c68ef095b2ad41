// Copyright © 2023 The Gomon Project.

/*
Package vnstat queries the vnstat command for its network traffic accounting
and decodes the JSON report. vnstat maintains the accounting itself; this
package only captures its latest figures.
*/
package vnstat
