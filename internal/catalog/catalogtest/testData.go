package catalogtest

var (
	BooksTwSearchPage string = `<!DOCTYPE html>
<html lang="zh-TW">
<head>
<meta charset="utf-8">
<title>博客來搜尋 - 9789573317247</title>
</head>
<body>
<div class="container_24 main_wrap clearfix">
  <div class="mod_b type02_l001-1 clearfix">
    <form id="searchlist" name="searchlist" method="post" action="">
      <ul class="searchbook">
        <li class="item">
          <input type="checkbox" name="list_item" value="0010586484">
          <a href="//www.books.com.tw/products/0010586484" rel="mid_image">
            <img class="itemcov" src="//im1.book.com.tw/image/getImage?i=0010586484" alt="哈利波特(1)：神秘的魔法石">
          </a>
          <h3>
            <a rel="mid_name" href="//www.books.com.tw/products/0010586484" title="哈利波特(1)：神秘的魔法石">哈利波特(1)：神秘的魔法石</a>
          </h3>
          <span class="cat">中文書</span>
          作者：<a rel="go_author" href="//search.books.com.tw/search/query/key/J.K.%E7%BE%85%E7%90%B3/adv_author/1/">J.K.羅琳</a>，
          譯者：<a rel="go_author" href="//search.books.com.tw/search/query/key/%E5%BD%AD%E5%80%A9%E6%96%87/adv_author/1/"> 彭倩文 </a>
          出版社：<a rel="mid_publish" href="//search.books.com.tw/search/query/key/%E7%9A%87%E5%86%A0/pub/1/">皇冠</a>
          <span class="price">優惠價：<strong><b>79</b></strong>折<strong><b>229</b></strong>元</span>
        </li>
      </ul>
    </form>
  </div>
</div>
</body>
</html>`

	BooksTwSearchPageTwoItems string = `<!DOCTYPE html>
<html lang="zh-TW">
<head><meta charset="utf-8"><title>博客來搜尋</title></head>
<body>
<form id="searchlist" name="searchlist">
  <ul class="searchbook">
    <li class="item">
      <h3><a rel="mid_name" href="https://www.books.com.tw/products/0010586484">哈利波特(1)：神秘的魔法石</a></h3>
      <span class="cat">中文書</span>
      <a rel="go_author" href="#">J.K.羅琳</a>
      <a rel="mid_publish" href="#">皇冠</a>
      <span class="price">優惠價：<strong><b>1,250</b></strong>元</span>
    </li>
    <li class="item">
      <h3>哈利波特(1)：神秘的魔法石 (電子書)</h3>
    </li>
  </ul>
</form>
</body>
</html>`

	BooksTwEmptySearchPage string = `<!DOCTYPE html>
<html lang="zh-TW">
<head><meta charset="utf-8"><title>博客來搜尋</title></head>
<body>
<form id="searchlist" name="searchlist">
  <ul class="searchbook"></ul>
  <p class="no_result">抱歉，找不到您所查詢的資料</p>
</form>
</body>
</html>`

	KingstoneSearchPage string = `<!DOCTYPE html>
<html lang="zh-Hant-TW">
<head>
<meta charset="utf-8">
<title>金石堂網路書店 - 搜尋結果</title>
</head>
<body>
<div class="wrapper">
  <div class="box row_list">
    <ul>
      <li class="displayunit">
        <div class="coverbox">
          <img src="https://cdn.kingstone.com.tw/book/images/product/20195/2019580195707/2019580195707m.jpg" alt="">
        </div>
        <div class="pdnamebox">
          <a class="anchor" href="/basic/2019580195707/"><span>哈利波特1：神秘的魔法石</span></a>
        </div>
        <div class="basicfunction">
          <span class="classification"><a class="main_class" href="/book/">中文書</a> &gt; <a href="/book/fr/">翻譯文學</a></span>
          <span class="author"><a href="/search/key/J.K.羅琳/">J.K.羅琳</a><a href="/search/key/彭倩文/">彭倩文</a></span>
          <span class="publisher"><a href="/publisher/皇冠/">皇冠</a></span>
        </div>
        <div class="buymixbox">
          <span class="price">定價：<span>300</span>元 優惠價：<span>79</span>折<span>237</span>元</span>
        </div>
      </li>
    </ul>
  </div>
</div>
</body>
</html>`

	SuperBookCitySearchPage string = `<!DOCTYPE html>
<html lang="zh">
<head>
<meta charset="utf-8">
<title>搜尋結果: '9789573317247'</title>
</head>
<body>
<div class="col-main">
  <div class="category-products results-view">
    <ul class="products-grid">
      <li class="item first">
        <a href="https://www.superbookcity.com/catalog/product/view/id/40217/" class="product-image"><img src="https://www.superbookcity.com/media/catalog/product/9/7/9789573317247.jpg" alt=""></a>
        <h2 class="product-name"><a href="https://www.superbookcity.com/catalog/product/view/id/40217/" title="哈利波特1神秘的魔法石">哈利波特1神秘的魔法石</a></h2>
        <div class="author">作者:J.K.羅琳</div>
        <div class="price-box">
          <p class="old-price"><span class="price-label">原價:</span><span class="price">HK$100.00</span></p>
          <p class="special-price"><span class="price-label">特價:</span><span class="price">HK$1,234.50 up</span></p>
        </div>
      </li>
    </ul>
  </div>
</div>
</body>
</html>`

	SuperBookCityRegularPricePage string = `<!DOCTYPE html>
<html lang="zh">
<head><meta charset="utf-8"><title>搜尋結果</title></head>
<body>
<div class="category-products results-view">
  <ul class="products-grid">
    <li class="item">
      <h2 class="product-name"><a href="/catalog/product/view/id/512/">哈利波特1神秘的魔法石 (25週年紀念版)</a></h2>
      <div class="author">作者：J.K.羅琳</div>
      <div class="price-box">
        <span class="regular-price"><span class="price">HK$98.00</span></span>
      </div>
    </li>
  </ul>
</div>
</body>
</html>`
)
