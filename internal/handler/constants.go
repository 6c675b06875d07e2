package handler

import "time"

// TimeFormat is the time format for API responses. Sub-second precision
// is kept so comments created within one second stay distinguishable.
const TimeFormat = time.RFC3339Nano

// ServiceName identifies this service in health responses.
const ServiceName = "comment-service"
