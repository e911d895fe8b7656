package app_info

// NAME the app name
const NAME = "portscribe"

// VERSION the app version
const VERSION = "v0.2.0"
