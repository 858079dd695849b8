package jupiter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Client fetches swap quotes from the Jupiter aggregator. Quotes are
// advisory; nothing here places orders.
type Client struct {
	HttpClient *http.Client
	BaseUrl    string
}

type GetQuoteInput struct {
	InputMint   string
	OutputMint  string
	Amount      uint64
	SlippageBps uint32
}

type QuoteResponse struct {
	InputMint      string `json:"inputMint"`
	InAmount       string `json:"inAmount"`
	OutputMint     string `json:"outputMint"`
	OutAmount      string `json:"outAmount"`
	PriceImpactPct string `json:"priceImpactPct"`
	SlippageBps    int32  `json:"slippageBps"`
}

func (r QuoteResponse) OutAmountUint64() (uint64, error) {
	out, err := strconv.ParseUint(r.OutAmount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse quoted out amount %q: %w", r.OutAmount, err)
	}
	return out, nil
}

func (c Client) GetQuote(in GetQuoteInput) (*QuoteResponse, error) {
	params := url.Values{}
	params.Set("inputMint", in.InputMint)
	params.Set("outputMint", in.OutputMint)
	params.Set("amount", strconv.FormatUint(in.Amount, 10))
	params.Set("slippageBps", strconv.FormatUint(uint64(in.SlippageBps), 10))

	req, err := http.NewRequest(http.MethodGet, c.BaseUrl+"/quote?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		type errResponse struct {
			Error string `json:"error"`
		}
		errJson := errResponse{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return nil, fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error)
	}

	var responseJson QuoteResponse
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, err
	}

	return &responseJson, nil
}
