package codegen

// Insertion-point markers. Generated code is inserted on a new line right
// after the marker, using the marker's indentation.
const (
	MarkerDeclaration = "/* @INSERTION_POINT:FUNCTION_DECLARATION@ */"
	MarkerDefinition  = "/* @INSERTION_POINT:FUNCTION_IMPLEMENTATION@ */"
	MarkerSourceList  = "# @INSERTION_POINT:SOURCE_FILE_GLIMPL@ #"
)

const headerTemplate = `#pragma once
#include <Includes.h>

namespace MobileGL {
    namespace MG_Impl::GLImpl {
        /* @INSERTION_POINT:FUNCTION_DECLARATION@ */
    } // namespace MG_Impl::GLImpl
} // namespace MobileGL`

// sourceTemplate starts with an empty line that is replaced by the
// component's include directive.
const sourceTemplate = `

namespace MobileGL {
    namespace MG_Impl::GLImpl {
        /* @INSERTION_POINT:FUNCTION_IMPLEMENTATION@ */
    } // namespace MG_Impl::GLImpl
} // namespace MobileGL`

// definitionBody is the body of a newly generated definition.
const definitionBody = " {\n    // TODO: implement\n}\n"
