package simplex

import "errors"

var (
	// ErrNilComplex indicates a nil *Complex was passed where one is required.
	ErrNilComplex = errors.New("simplex: complex is nil")
	// ErrNilFiltration indicates a nil *Filtration was passed where one is required.
	ErrNilFiltration = errors.New("simplex: filtration is nil")
	// ErrVertexRange indicates a vertex index outside [0, NumVertices).
	ErrVertexRange = errors.New("simplex: vertex index out of range")
	// ErrFaceRange indicates a face index outside the previous layer.
	ErrFaceRange = errors.New("simplex: face index out of range")
	// ErrVertsNotSorted indicates a vertex list that is not strictly ascending.
	ErrVertsNotSorted = errors.New("simplex: vertex list not strictly ascending")
	// ErrDuplicateSimplex indicates two simplices of a layer share a vertex set.
	ErrDuplicateSimplex = errors.New("simplex: duplicate simplex in layer")
	// ErrFaceCount indicates a simplex whose vertex or face list length does
	// not match its layer's dimension (k+1 vertices; k+1 faces, none for edges).
	ErrFaceCount = errors.New("simplex: vertex or face count does not match dimension")
	// ErrFaceNotSubset indicates a face whose vertices are not contained in its coface.
	ErrFaceNotSubset = errors.New("simplex: face vertices not a subset of coface")
	// ErrLayerNotSorted indicates a filtration layer not sorted by index ascending.
	ErrLayerNotSorted = errors.New("simplex: filtration layer not sorted by index")
	// ErrFacesNotSorted indicates a face-index list not sorted descending.
	ErrFacesNotSorted = errors.New("simplex: face indices not sorted descending")
	// ErrFaceAfterCoface indicates a face with a larger filtration index than its coface.
	ErrFaceAfterCoface = errors.New("simplex: face enters filtration after its coface")
	// ErrNegativeIndex indicates a negative filtration index.
	ErrNegativeIndex = errors.New("simplex: negative filtration index")
	// ErrVertexIndexLen indicates a vertex-index slice whose length differs from NumVertices.
	ErrVertexIndexLen = errors.New("simplex: vertex index slice length mismatch")
)
