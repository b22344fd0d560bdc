package logger

const RequestIdKey = "X-Studio-Request-Id"

var LogDir string
