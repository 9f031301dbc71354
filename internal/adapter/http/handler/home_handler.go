package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the interactive review form
type HomeHandler struct{}

// NewHomeHandler creates a new home handler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home handles GET /
func (h *HomeHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homePage))
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>IMDB Sentiment Analysis</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 10px; }
        textarea { width: 100%; height: 150px; padding: 10px; border: 1px solid #ddd; border-radius: 5px; }
        button { background: #007bff; color: white; padding: 10px 20px; border: none; border-radius: 5px; cursor: pointer; }
        button:hover { background: #0056b3; }
        .result { margin-top: 20px; padding: 15px; border-radius: 5px; }
        .positive { background: #d4edda; color: #155724; border: 1px solid #c3e6cb; }
        .negative { background: #f8d7da; color: #721c24; border: 1px solid #f5c6cb; }
        .error { background: #f8d7da; color: #721c24; border: 1px solid #f5c6cb; }
    </style>
</head>
<body>
    <div class="container">
        <h1>🎬 IMDB Movie Review Sentiment Analysis</h1>
        <p>Enter a movie review below to analyze its sentiment:</p>
        <form id="sentimentForm">
            <textarea id="review" placeholder="Enter your movie review here..." required></textarea><br><br>
            <button type="submit">Analyze Sentiment</button>
        </form>
        <div id="result"></div>
    </div>

    <script>
        document.getElementById('sentimentForm').addEventListener('submit', async function(e) {
            e.preventDefault();
            const review = document.getElementById('review').value;
            const resultDiv = document.getElementById('result');

            try {
                const response = await fetch('/predict', {
                    method: 'POST',
                    headers: {'Content-Type': 'application/json'},
                    body: JSON.stringify({review: review})
                });

                const data = await response.json();

                if (data.error) {
                    resultDiv.innerHTML = ` + "`" + `<div class="result error">Error: ${data.error}</div>` + "`" + `;
                } else {
                    const sentiment = data.prediction;
                    const confidence = data.confidence;
                    const sentimentClass = sentiment === 'positive' ? 'positive' : 'negative';
                    const emoji = sentiment === 'positive' ? '😊' : '😞';

                    resultDiv.innerHTML = ` + "`" + `
                        <div class="result ${sentimentClass}">
                            <h3>${emoji} Sentiment: ${sentiment.toUpperCase()}</h3>
                            <p>Confidence: ${(confidence * 100).toFixed(2)}%</p>
                        </div>
                    ` + "`" + `;
                }
            } catch (error) {
                resultDiv.innerHTML = ` + "`" + `<div class="result error">Error: ${error.message}</div>` + "`" + `;
            }
        });
    </script>
</body>
</html>
`
