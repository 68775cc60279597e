package response

import (
	"bytes"
	"strconv"
)

// Build serializes an HTTP/1.1 response with the fixed header set every
// picohttp response carries. Header order is fixed:
//
//	HTTP/1.1 <status>\r\n
//	Content-Type: text/html; charset=utf-8\r\n
//	Content-Length: <N>\r\n
//	Connection: close\r\n
//	\r\n
//	<body>
//
// N is the exact byte length of body. No other headers are ever emitted.
func Build(status string, body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("HTTP/1.1 ")
	buf.WriteString(status)
	buf.WriteString("\r\n")
	buf.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	buf.WriteString("Content-Length: ")
	buf.WriteString(strconv.Itoa(len(body)))
	buf.WriteString("\r\n")
	buf.WriteString("Connection: close\r\n")
	buf.WriteString("\r\n")
	buf.Write(body)
	return buf.Bytes()
}
