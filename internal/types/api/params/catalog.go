package params

// ListProductsParams contains parameters for the public catalog list
type ListProductsParams struct {
	Category string
	Limit    int32
	Offset   int32
}
