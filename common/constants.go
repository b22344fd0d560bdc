package common

import "time"

var StartTime = time.Now().Unix() // unit: second
var Version = "v0.1.0"            // this hard coding will be replaced automatically when building, no need to manually change
