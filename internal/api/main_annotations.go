// @title           links API
// @version         1.0
// @description     Like counter for the links.jessejesse.com profile page. Visitor identity is an anonymous cookie; no authentication.
// @BasePath        /api
package api
