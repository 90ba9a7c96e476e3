package miragic

// Version текущая версия SDK.
const Version = "1.2.0"
