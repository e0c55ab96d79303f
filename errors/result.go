/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package errors

import "fmt"

// The closed result taxonomy shared by every package of the library.
// The block is ordered and stable: codes are part of the API.
const (
	CodeSuccess CodeError = iota
	CodeFailure
	CodeNothingToDo
	CodeInternalError
	CodeNotInitialized
	CodeInvalidConfiguration
	CodeInvalidParameter
	CodeMemoryAllocationFailure
	CodeCountExceeded
	CodeNotFound
	CodeBufferTooSmall
	CodeFormatVariationNotSupported
	CodeObjectTypeMismatch
	CodeCorruptData
	CodeInputExhausted
	CodeOutputExhausted
	CodeCompressionError
	CodeUnsupported
	CodeTimeout
	CodeAlignmentRequired
	CodeDecryptionKeyRequired
	CodeDecryptionKeyMismatch
	CodeSignatureMismatch
	CodeObjectExpired
	CodeParseError
	CodeInternalCryptoError
	CodeOutOfOrder
	CodeOutOfRange
	CodeCalledMoreThanOnce
	CodeImageLoadFailure
	CodeOpenFailure
	CodeCloseFailure
	CodeReadFailure
	CodeWriteFailure
	CodeSocketError
	CodeAuthError
	CodeNotAllowed
	CodeInvalidLicense
	CodePending
	CodeCancelled
	CodeOutOfSync
	CodeSessionExpired
	CodeProxyError
	CodeProxyAuthRequired
	CodeExceededAllowedLimit
	CodeRateLimited
	CodePremiumOnly
	CodeInProgress

	codeResultCount
)

// resultNames maps each taxonomy code to its stable symbolic name.
var resultNames = [codeResultCount]string{
	CodeSuccess:                     "Success",
	CodeFailure:                     "Failure",
	CodeNothingToDo:                 "NothingToDo",
	CodeInternalError:               "InternalError",
	CodeNotInitialized:              "NotInitialized",
	CodeInvalidConfiguration:        "InvalidConfiguration",
	CodeInvalidParameter:            "InvalidParameter",
	CodeMemoryAllocationFailure:     "MemoryAllocationFailure",
	CodeCountExceeded:               "CountExceeded",
	CodeNotFound:                    "NotFound",
	CodeBufferTooSmall:              "BufferTooSmall",
	CodeFormatVariationNotSupported: "FormatVariationNotSupported",
	CodeObjectTypeMismatch:          "ObjectTypeMismatch",
	CodeCorruptData:                 "CorruptData",
	CodeInputExhausted:              "InputExhausted",
	CodeOutputExhausted:             "OutputExhausted",
	CodeCompressionError:            "CompressionError",
	CodeUnsupported:                 "Unsupported",
	CodeTimeout:                     "Timeout",
	CodeAlignmentRequired:           "AlignmentRequired",
	CodeDecryptionKeyRequired:       "DecryptionKeyRequired",
	CodeDecryptionKeyMismatch:       "DecryptionKeyMismatch",
	CodeSignatureMismatch:           "SignatureMismatch",
	CodeObjectExpired:               "ObjectExpired",
	CodeParseError:                  "ParseError",
	CodeInternalCryptoError:         "InternalCryptoError",
	CodeOutOfOrder:                  "OutOfOrder",
	CodeOutOfRange:                  "OutOfRange",
	CodeCalledMoreThanOnce:          "CalledMoreThanOnce",
	CodeImageLoadFailure:            "ImageLoadFailure",
	CodeOpenFailure:                 "OpenFailure",
	CodeCloseFailure:                "CloseFailure",
	CodeReadFailure:                 "ReadFailure",
	CodeWriteFailure:                "WriteFailure",
	CodeSocketError:                 "SocketError",
	CodeAuthError:                   "AuthError",
	CodeNotAllowed:                  "NotAllowed",
	CodeInvalidLicense:              "InvalidLicense",
	CodePending:                     "Pending",
	CodeCancelled:                   "Cancelled",
	CodeOutOfSync:                   "OutOfSync",
	CodeSessionExpired:              "SessionExpired",
	CodeProxyError:                  "ProxyError",
	CodeProxyAuthRequired:           "ProxyAuthRequired",
	CodeExceededAllowedLimit:        "ExceededAllowedLimit",
	CodeRateLimited:                 "RateLimited",
	CodePremiumOnly:                 "PremiumOnly",
	CodeInProgress:                  "InProgress",
}

func init() {
	// CodeSuccess is code zero and never carries a message; the message
	// block starts at CodeFailure.
	if ExistInMapMessage(CodeFailure) {
		panic(fmt.Errorf("error code collision udstk/errors"))
	}
	RegisterIdFctMessage(CodeFailure, getResultMessage)
}

// ResultString returns the stable symbolic name of a taxonomy code,
// or an empty string when the code is outside the taxonomy.
func ResultString(c CodeError) string {
	if c >= codeResultCount {
		return ""
	}
	return resultNames[c]
}

// ParseResult returns the taxonomy code bearing the given symbolic name.
// The boolean result is false when no code matches.
func ParseResult(name string) (CodeError, bool) {
	for c, n := range resultNames {
		if n == name {
			return CodeError(c), true
		}
	}
	return UnknownError, false
}

// ResultCount returns the number of codes in the taxonomy.
func ResultCount() int {
	return int(codeResultCount)
}

func getResultMessage(code CodeError) (message string) {
	switch code {
	case CodeFailure:
		return "generic failure"
	case CodeNothingToDo:
		return "nothing to do"
	case CodeInternalError:
		return "internal error"
	case CodeNotInitialized:
		return "not initialized"
	case CodeInvalidConfiguration:
		return "invalid configuration"
	case CodeInvalidParameter:
		return "invalid parameter"
	case CodeMemoryAllocationFailure:
		return "memory allocation failure"
	case CodeCountExceeded:
		return "count exceeded"
	case CodeNotFound:
		return "not found"
	case CodeBufferTooSmall:
		return "buffer too small"
	case CodeFormatVariationNotSupported:
		return "format variation not supported"
	case CodeObjectTypeMismatch:
		return "object type mismatch"
	case CodeCorruptData:
		return "corrupt data"
	case CodeInputExhausted:
		return "input exhausted"
	case CodeOutputExhausted:
		return "output exhausted"
	case CodeCompressionError:
		return "compression error"
	case CodeUnsupported:
		return "unsupported"
	case CodeTimeout:
		return "timeout"
	case CodeAlignmentRequired:
		return "alignment required"
	case CodeDecryptionKeyRequired:
		return "decryption key required"
	case CodeDecryptionKeyMismatch:
		return "decryption key mismatch"
	case CodeSignatureMismatch:
		return "signature mismatch"
	case CodeObjectExpired:
		return "object expired"
	case CodeParseError:
		return "parse error"
	case CodeInternalCryptoError:
		return "internal crypto error"
	case CodeOutOfOrder:
		return "out of order"
	case CodeOutOfRange:
		return "out of range"
	case CodeCalledMoreThanOnce:
		return "called more than once"
	case CodeImageLoadFailure:
		return "image load failure"
	case CodeOpenFailure:
		return "open failure"
	case CodeCloseFailure:
		return "close failure"
	case CodeReadFailure:
		return "read failure"
	case CodeWriteFailure:
		return "write failure"
	case CodeSocketError:
		return "socket error"
	case CodeAuthError:
		return "authentication error"
	case CodeNotAllowed:
		return "not allowed"
	case CodeInvalidLicense:
		return "invalid license"
	case CodePending:
		return "pending"
	case CodeCancelled:
		return "cancelled"
	case CodeOutOfSync:
		return "out of sync"
	case CodeSessionExpired:
		return "session expired"
	case CodeProxyError:
		return "proxy error"
	case CodeProxyAuthRequired:
		return "proxy authentication required"
	case CodeExceededAllowedLimit:
		return "exceeded allowed limit"
	case CodeRateLimited:
		return "rate limited"
	case CodePremiumOnly:
		return "premium only"
	case CodeInProgress:
		return "in progress"
	}

	return NullMessage
}
