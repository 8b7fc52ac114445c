package entity

// Industry clasificación sectorial; Code lo define el cliente.
type Industry struct {
	Code     string
	Industry string
}

// CompanyIndustry asociación muchos-a-muchos entre empresa e industria.
// El mismo par no puede existir dos veces.
type CompanyIndustry struct {
	CompanyCode  string
	IndustryCode string
}
