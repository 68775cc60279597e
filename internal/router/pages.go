package router

// Fixed HTML fragments served by the plain variant.
const (
	homePage = "<html><body><h1>Welcome to Python HTTP Server!</h1><p>This is built from scratch.</p></body></html>"

	aboutPage = "<html><body><h1>About</h1><p>This is a learning project - HTTP server from scratch in Python.</p></body></html>"

	notFoundPage = "<html><body><h1>404 Not Found</h1><p>The page you requested was not found.</p></body></html>"
)

// Fixed HTML fragments served by the secure variant.
const (
	secureHomePage = `<html>
<body>
<h1>🔒 Welcome to Python HTTPS Server!</h1>
<p>This connection is <strong>encrypted with TLS/SSL</strong>.</p>
<p>Built from scratch to understand HTTPS internals.</p>
<ul>
<li><a href="/about">About</a></li>
<li><a href="/encryption">How Encryption Works</a></li>
</ul>
</body>
</html>`

	secureAboutPage = `<html>
<body>
<h1>About</h1>
<p>This is a learning project - HTTPS server from scratch in Python.</p>
<p>The connection uses TLS/SSL encryption to secure communication.</p>
</body>
</html>`

	encryptionPage = `<html>
<body>
<h1>🔐 How This Encryption Works</h1>
<h2>TLS Handshake (Key Exchange):</h2>
<ol>
<li><strong>ClientHello:</strong> Your browser sends supported ciphers</li>
<li><strong>ServerHello:</strong> Server responds with chosen cipher</li>
<li><strong>Certificate:</strong> Server sends its certificate (public key)</li>
<li><strong>Key Exchange:</strong> Browser generates secret, encrypts with server's public key</li>
<li><strong>Session Keys:</strong> Both derive symmetric keys from shared secret</li>
<li><strong>Finished:</strong> Test encryption works</li>
</ol>
<h2>Encrypted Communication:</h2>
<p>After handshake, all data is encrypted with symmetric encryption (fast!).</p>
<p>This page was transmitted encrypted! 🔒</p>
</body>
</html>`

	secureNotFoundPage = "<html><body><h1>404 Not Found</h1></body></html>"
)
