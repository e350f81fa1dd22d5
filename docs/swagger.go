// Package docs contains the OpenAPI documentation for the BCF discovery server
//
//	@title			BCF REST API
//	@version		2.1
//	@description	BCF is a format for managing issues on a BIM project. The BCF-API supports the exchange of BCF issues between software applications via a RESTful web interface.
//
//	@contact.name	BCF API Support
//	@contact.url	https://github.com/BuildingSMART/BCF-API
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8000
//	@BasePath	/
//	@schemes	http https
//
//	@tag.name			Public Services
//	@tag.description	Version discovery and authentication capability endpoints; no authentication required
package docs
