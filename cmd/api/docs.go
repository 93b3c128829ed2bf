package main

// @title           PlacementPro API
// @version         1.0
// @description     API for the PlacementPro career placement platform: chat, AI assistant, resume scanner, job board and training catalog

// @contact.name   API Support
// @contact.email  support@placementpro.example

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT authentication header using the Bearer scheme. Example: "Bearer {token}"
