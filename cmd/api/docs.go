package main

// @title           Aguamarina POS API
// @version         1.0
// @description     API do ponto de venda e catálogo da loja Aguamarina

// @contact.name   Aguamarina
// @contact.email  sistemas@aguamarina.ar

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
